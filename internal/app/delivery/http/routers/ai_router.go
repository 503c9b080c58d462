package routers

import (
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAIRoutes(router chi.Router, middlewares *middlewares.Middlewares, aiController *controllers.AIController) {
	router.With(middlewares.AuthenticatePatient).Post("/ai-booking", aiController.AIBooking)
	router.With(middlewares.AuthenticatePatient).Post("/confirm-appointment", aiController.ConfirmAppointment)
}
