package controllers

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"coach-service/internal/pkg/exceptions"
	"coach-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GoalController struct {
	Log         *zap.Logger
	GoalUsecase contracts.GoalUsecase
}

var (
	goalControllerInstance *GoalController
	onceGoalController     sync.Once
)

func NewGoalController(logger *zap.Logger, goalUsecase contracts.GoalUsecase) *GoalController {
	onceGoalController.Do(func() {
		goalControllerInstance = &GoalController{
			Log:         logger,
			GoalUsecase: goalUsecase,
		}
	})
	return goalControllerInstance
}

func (ctrl *GoalController) CommitGoal(w http.ResponseWriter, r *http.Request) {
	ctrl.handleCommit(w, r, "GoalController.CommitGoal", constvars.GoalCommittedSuccess,
		func(ctx context.Context, blockID string) (*responses.CommitResult, error) {
			return ctrl.GoalUsecase.CommitGoal(ctx, &requests.CommitGoal{BlockID: blockID})
		})
}

func (ctrl *GoalController) CommitBPGoal(w http.ResponseWriter, r *http.Request) {
	ctrl.handleCommit(w, r, "GoalController.CommitBPGoal", constvars.BPGoalCommittedSuccess,
		func(ctx context.Context, blockID string) (*responses.CommitResult, error) {
			return ctrl.GoalUsecase.CommitBPGoal(ctx, &requests.CommitBPGoal{BlockID: blockID})
		})
}

func (ctrl *GoalController) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctrl.handleCommit(w, r, "GoalController.UpdateGoal", constvars.GoalUpdatedSuccess,
		func(ctx context.Context, blockID string) (*responses.CommitResult, error) {
			return ctrl.GoalUsecase.UpdateGoal(ctx, &requests.UpdateGoal{BlockID: blockID})
		})
}

func (ctrl *GoalController) handleCommit(w http.ResponseWriter, r *http.Request, operation, successMessage string, commit func(context.Context, string) (*responses.CommitResult, error)) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	blockID := chi.URLParam(r, constvars.URLParamBlockID)
	if blockID == "" {
		ctrl.Log.Error(operation+" missing block ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := commit(ctx, blockID)
	if err != nil {
		ctrl.Log.Error(operation+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBlockIDKey, blockID),
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, response)
}
