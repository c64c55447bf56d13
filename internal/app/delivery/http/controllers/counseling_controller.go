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
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CounselingController struct {
	Log               *zap.Logger
	CounselingUsecase contracts.CounselingUsecase
}

var (
	counselingControllerInstance *CounselingController
	onceCounselingController     sync.Once
)

func NewCounselingController(logger *zap.Logger, counselingUsecase contracts.CounselingUsecase) *CounselingController {
	onceCounselingController.Do(func() {
		counselingControllerInstance = &CounselingController{
			Log:               logger,
			CounselingUsecase: counselingUsecase,
		}
	})
	return counselingControllerInstance
}

func (ctrl *CounselingController) RegisterReceived(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CounselingController.RegisterReceived requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CounselingController.RegisterReceived called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CounselingAction)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("CounselingController.RegisterReceived error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.BlockID = chi.URLParam(r, constvars.URLParamBlockID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("CounselingController.RegisterReceived validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CounselingUsecase.RegisterReceived(ctx, request)
	if err != nil {
		ctrl.Log.Error("CounselingController.RegisterReceived error from usecase",
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

	ctrl.Log.Info("CounselingController.RegisterReceived succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CounselingRecordedSuccess, response)
}
