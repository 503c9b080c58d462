package routers

import (
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, _ *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/list", doctorController.List)
	router.Get("/available-slots", doctorController.AvailableSlots)
	// Websocket clients cannot set the dtoken header on upgrade, so this
	// route authenticates via a token query parameter inside the handler.
	router.Get("/notifications", doctorController.Notifications)
}
