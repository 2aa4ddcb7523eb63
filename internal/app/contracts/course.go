package contracts

import (
	"context"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/dto/responses"
)

type CourseUsecase interface {
	FindCourses(ctx context.Context, request *requests.FindCourses) ([]responses.Course, error)
	FindSectionsByCourseCode(ctx context.Context, request *requests.FindSectionsByCourseCode) ([]responses.Section, error)
	// CandidateSectionsByCourseName resolves one course-name query to the
	// sections the schedule generator may choose from.
	CandidateSectionsByCourseName(ctx context.Context, courseName string) ([]models.Section, error)
	RecentSearches(ctx context.Context) ([]string, error)
	RefreshSearch(ctx context.Context, courseName string) error
}
