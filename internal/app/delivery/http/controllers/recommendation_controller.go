package controllers

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"coach-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecommendationController struct {
	Log                   *zap.Logger
	RecommendationUsecase contracts.RecommendationUsecase
}

var (
	recommendationControllerInstance *RecommendationController
	onceRecommendationController     sync.Once
)

func NewRecommendationController(logger *zap.Logger, recommendationUsecase contracts.RecommendationUsecase) *RecommendationController {
	onceRecommendationController.Do(func() {
		recommendationControllerInstance = &RecommendationController{
			Log:                   logger,
			RecommendationUsecase: recommendationUsecase,
		}
	})
	return recommendationControllerInstance
}

func (ctrl *RecommendationController) Execute(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RecommendationController.Execute requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RecommendationController.Execute called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ExecuteRecommendation{
		RecommendationID: chi.URLParam(r, constvars.URLParamRecommendationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RecommendationController.Execute validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecommendationUsecase.Execute(ctx, request)
	if err != nil {
		ctrl.Log.Error("RecommendationController.Execute error from usecase",
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

	ctrl.Log.Info("RecommendationController.Execute succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecommendationExecuteSuccess, response)
}

func (ctrl *RecommendationController) GetCached(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RecommendationController.GetCached requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RecommendationController.GetCached called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.GetCachedRecommendation{
		RecommendationID: chi.URLParam(r, constvars.URLParamRecommendationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RecommendationController.GetCached validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecommendationUsecase.GetCached(ctx, request)
	if err != nil {
		ctrl.Log.Error("RecommendationController.GetCached error from usecase",
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

	ctrl.Log.Info("RecommendationController.GetCached succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecommendationCachedSuccess, response)
}

func (ctrl *RecommendationController) ApplyGoals(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RecommendationController.ApplyGoals requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RecommendationController.ApplyGoals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ApplyGoals{
		RecommendationID: chi.URLParam(r, constvars.URLParamRecommendationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RecommendationController.ApplyGoals validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecommendationUsecase.ApplyGoals(ctx, request)
	if err != nil {
		ctrl.Log.Error("RecommendationController.ApplyGoals error from usecase",
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

	ctrl.Log.Info("RecommendationController.ApplyGoals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecommendationApplyGoals, response)
}
