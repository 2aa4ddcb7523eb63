package schedules

import (
	"context"
	"senehorario-service/internal/app/contracts"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/dto/responses"
	"senehorario-service/internal/pkg/exceptions"
	"senehorario-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	CourseUsecase contracts.CourseUsecase
	Log           *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	courseUsecase contracts.CourseUsecase,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			CourseUsecase: courseUsecase,
			Log:           logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

// GenerateSchedules resolves each requested course name to its candidate
// sections, one slot per name in request order, then enumerates every
// conflict-free combination. A name that resolves to zero sections is a bad
// request naming that course, so the caller can tell "course not found" apart
// from "no compatible schedule" (an empty result with count zero).
func (uc *scheduleUsecase) GenerateSchedules(ctx context.Context, request *requests.GenerateSchedules) (*responses.GenerateSchedules, error) {
	requestID := utils.GetRequestID(ctx)
	if request == nil || request.Courses == nil {
		return nil, exceptions.ErrCandidatesNil(nil)
	}

	candidates := make([][]models.Section, 0, len(request.Courses))
	for _, courseName := range request.Courses {
		sections, err := uc.CourseUsecase.CandidateSectionsByCourseName(ctx, courseName)
		if err != nil {
			return nil, err
		}
		if len(sections) == 0 {
			return nil, exceptions.ErrCourseNoSections(nil, courseName)
		}
		candidates = append(candidates, sections)
	}

	if err := VerifyCandidates(candidates); err != nil {
		return nil, err
	}

	generated := GenerateAllSchedules(candidates)
	uc.Log.Info("finished generating schedules",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCourseCountKey, len(request.Courses)),
		zap.Int(constvars.LoggingScheduleCountKey, len(generated)),
	)

	schedulesResponse := make([]responses.Schedule, 0, len(generated))
	for _, schedule := range generated {
		schedulesResponse = append(schedulesResponse, utils.ToScheduleResponse(schedule))
	}

	return &responses.GenerateSchedules{
		Count:     len(schedulesResponse),
		Schedules: schedulesResponse,
	}, nil
}
