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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VitalsController struct {
	Log           *zap.Logger
	VitalsUsecase contracts.VitalsUsecase
}

var (
	vitalsControllerInstance *VitalsController
	onceVitalsController     sync.Once
)

func NewVitalsController(logger *zap.Logger, vitalsUsecase contracts.VitalsUsecase) *VitalsController {
	onceVitalsController.Do(func() {
		vitalsControllerInstance = &VitalsController{
			Log:           logger,
			VitalsUsecase: vitalsUsecase,
		}
	})
	return vitalsControllerInstance
}

func (ctrl *VitalsController) CreateReading(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("VitalsController.CreateReading requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("VitalsController.CreateReading called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateVitals)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("VitalsController.CreateReading error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("VitalsController.CreateReading validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.VitalsUsecase.CreateReading(ctx, request)
	if err != nil {
		ctrl.Log.Error("VitalsController.CreateReading error from usecase",
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

	ctrl.Log.Info("VitalsController.CreateReading succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VitalsCreatedSuccess, response)
}
