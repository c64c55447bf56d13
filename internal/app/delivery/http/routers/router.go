package routers

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/delivery/http/controllers"
	"coach-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	recommendationController *controllers.RecommendationController,
	blockController *controllers.BlockController,
	goalController *controllers.GoalController,
	counselingController *controllers.CounselingController,
	vitalsController *controllers.VitalsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/recommendations", func(r chi.Router) {
			attachRecommendationRouter(r, recommendationController)
		})

		r.Route("/blocks", func(r chi.Router) {
			attachBlockRouter(r, blockController, goalController, counselingController)
		})

		r.Route("/vitals", func(r chi.Router) {
			attachVitalsRouter(r, vitalsController)
		})
	})
}
