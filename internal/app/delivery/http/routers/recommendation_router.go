package routers

import (
	"coach-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRecommendationRouter(router chi.Router, recommendationController *controllers.RecommendationController) {
	router.Post("/{recommendationID}/execute", recommendationController.Execute)
	router.Post("/{recommendationID}/cached", recommendationController.GetCached)
	router.Post("/{recommendationID}/apply-goals", recommendationController.ApplyGoals)
}
