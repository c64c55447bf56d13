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

type BlockController struct {
	Log          *zap.Logger
	BlockUsecase contracts.BlockUsecase
}

var (
	blockControllerInstance *BlockController
	onceBlockController     sync.Once
)

func NewBlockController(logger *zap.Logger, blockUsecase contracts.BlockUsecase) *BlockController {
	onceBlockController.Do(func() {
		blockControllerInstance = &BlockController{
			Log:          logger,
			BlockUsecase: blockUsecase,
		}
	})
	return blockControllerInstance
}

func (ctrl *BlockController) ApplySelection(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("BlockController.ApplySelection requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("BlockController.ApplySelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ApplySelection)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("BlockController.ApplySelection error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.BlockID = chi.URLParam(r, constvars.URLParamBlockID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("BlockController.ApplySelection validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlockUsecase.ApplySelection(ctx, request)
	if err != nil {
		ctrl.Log.Error("BlockController.ApplySelection error from usecase",
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

	ctrl.Log.Info("BlockController.ApplySelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectionAppliedSuccess, response)
}

func (ctrl *BlockController) RecordInput(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("BlockController.RecordInput requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("BlockController.RecordInput called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RecordInput)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("BlockController.RecordInput error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.BlockID = chi.URLParam(r, constvars.URLParamBlockID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("BlockController.RecordInput validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlockUsecase.RecordInput(ctx, request)
	if err != nil {
		ctrl.Log.Error("BlockController.RecordInput error from usecase",
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

	ctrl.Log.Info("BlockController.RecordInput succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InputRecordedSuccess, response)
}
