package routers

import (
	"coach-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBlockRouter(
	router chi.Router,
	blockController *controllers.BlockController,
	goalController *controllers.GoalController,
	counselingController *controllers.CounselingController,
) {
	router.Post("/{blockID}/selection", blockController.ApplySelection)
	router.Post("/{blockID}/input", blockController.RecordInput)
	router.Post("/{blockID}/commit-goal", goalController.CommitGoal)
	router.Post("/{blockID}/commit-bp-goal", goalController.CommitBPGoal)
	router.Post("/{blockID}/update-goal", goalController.UpdateGoal)
	router.Post("/{blockID}/counseling", counselingController.RegisterReceived)
}
