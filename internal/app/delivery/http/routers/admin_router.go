package routers

import (
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController, doctorController *controllers.DoctorController) {
	router.Post("/login", adminController.Login)
	router.Post("/login-doctors", doctorController.Login)
	router.With(middlewares.AuthenticateAdmin).Post("/add-doctor", adminController.AddDoctor)
	router.With(middlewares.AuthenticateAdmin).Post("/all-doctors", adminController.AllDoctors)
	router.With(middlewares.AuthenticateAdmin).Post("/change-availability", adminController.ChangeAvailability)
	router.With(middlewares.AuthenticateAdmin).Post("/cancel-appointment", adminController.CancelAppointment)
	// Shared with doctors; the handlers filter by the authenticated role.
	router.With(middlewares.AuthenticateStaff).Get("/appointments", adminController.Appointments)
	router.With(middlewares.AuthenticateStaff).Get("/dashboard", adminController.Dashboard)
}
