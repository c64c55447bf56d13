package routers

import (
	"coach-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachVitalsRouter(router chi.Router, vitalsController *controllers.VitalsController) {
	router.Post("/", vitalsController.CreateReading)
}
