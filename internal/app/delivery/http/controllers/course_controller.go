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

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseController struct {
	Log           *zap.Logger
	CourseUsecase contracts.CourseUsecase
}

var (
	courseControllerInstance *CourseController
	onceCourseController     sync.Once
)

func NewCourseController(logger *zap.Logger, courseUsecase contracts.CourseUsecase) *CourseController {
	onceCourseController.Do(func() {
		instance := &CourseController{
			Log:           logger,
			CourseUsecase: courseUsecase,
		}
		courseControllerInstance = instance
	})
	return courseControllerInstance
}

func (ctrl *CourseController) FindCourses(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.FindCourses requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.FindCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindCourses{
		Name: r.URL.Query().Get(constvars.URLQueryParamName),
	}
	utils.SanitizeFindCoursesRequest(request)

	if request.Name == "" {
		ctrl.Log.Error("CourseController.FindCourses missing course name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingCourseName(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CourseUsecase.FindCourses(ctx, request)
	if err != nil {
		ctrl.Log.Error("CourseController.FindCourses error from usecase",
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

	ctrl.Log.Info("CourseController.FindCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCourseNameKey, request.Name),
		zap.Int(constvars.LoggingCourseCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCoursesSuccessMessage, response)
}

func (ctrl *CourseController) FindSectionsByCourseCode(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.FindSectionsByCourseCode requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.FindSectionsByCourseCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindSectionsByCourseCode{
		Code: chi.URLParam(r, constvars.URLParamCourseCode),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("CourseController.FindSectionsByCourseCode validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CourseUsecase.FindSectionsByCourseCode(ctx, request)
	if err != nil {
		ctrl.Log.Error("CourseController.FindSectionsByCourseCode error from usecase",
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

	ctrl.Log.Info("CourseController.FindSectionsByCourseCode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCourseCodeKey, request.Code),
		zap.Int(constvars.LoggingSectionCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSectionsSuccessMessage, response)
}
