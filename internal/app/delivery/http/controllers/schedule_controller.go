package controllers

import (
	"context"
	"senehorario-service/internal/app/contracts"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/exceptions"
	"senehorario-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	scheduleControllerInstance *ScheduleController
	onceScheduleController     sync.Once
)

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	onceScheduleController.Do(func() {
		instance := &ScheduleController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
		scheduleControllerInstance = instance
	})
	return scheduleControllerInstance
}

func (ctrl *ScheduleController) GenerateSchedules(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.GenerateSchedules requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.GenerateSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.GenerateSchedules)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ScheduleController.GenerateSchedules error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeGenerateSchedulesRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.GenerateSchedules validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Generation resolves every course against the catalog before it starts
	// combining, so this endpoint gets a wider budget than the lookups.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GenerateSchedules(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GenerateSchedules error from usecase",
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

	ctrl.Log.Info("ScheduleController.GenerateSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCourseCountKey, len(request.Courses)),
		zap.Int(constvars.LoggingScheduleCountKey, response.Count),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateSchedulesSuccessMessage, response)
}
