package routers

import (
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	adminController *controllers.AdminController,
	doctorController *controllers.DoctorController,
	userController *controllers.UserController,
	aiController *controllers.AIController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "atoken", "dtoken", "token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		attachAIRoutes(r, middlewares, aiController)

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, adminController, doctorController)
		})

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/user", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})
	})
}
