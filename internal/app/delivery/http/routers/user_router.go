package routers

import (
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/register", userController.Register)
	router.Post("/login", userController.Login)
	router.With(middlewares.AuthenticatePatient).Get("/get-profile", userController.GetProfile)
	router.With(middlewares.AuthenticatePatient).Post("/book-appointment", userController.BookAppointment)
	router.With(middlewares.AuthenticatePatient).Get("/appointments", userController.Appointments)
}
