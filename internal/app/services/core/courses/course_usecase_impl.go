package courses

import (
	"context"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/contracts"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/dto/responses"
	"senehorario-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type courseUsecase struct {
	CatalogClient   contracts.CourseCatalogClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	courseUsecaseInstance contracts.CourseUsecase
	onceCourseUsecase     sync.Once
)

func NewCourseUsecase(
	catalogClient contracts.CourseCatalogClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CourseUsecase {
	onceCourseUsecase.Do(func() {
		instance := &courseUsecase{
			CatalogClient:   catalogClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		courseUsecaseInstance = instance
	})
	return courseUsecaseInstance
}

func (uc *courseUsecase) FindCourses(ctx context.Context, request *requests.FindCourses) ([]responses.Course, error) {
	courses, err := uc.domainCourses(ctx, request.Name)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("resolved course search",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCourseNameKey, request.Name),
		zap.Int(constvars.LoggingCourseCountKey, len(courses)),
	)

	response := make([]responses.Course, 0, len(courses))
	for _, course := range courses {
		response = append(response, utils.ToCourseResponse(course))
	}
	return response, nil
}

func (uc *courseUsecase) FindSectionsByCourseCode(ctx context.Context, request *requests.FindSectionsByCourseCode) ([]responses.Section, error) {
	sections, err := uc.candidateSections(ctx, request.Code)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Section, 0, len(sections))
	for _, section := range sections {
		response = append(response, utils.ToSectionResponse(section))
	}
	return response, nil
}

func (uc *courseUsecase) CandidateSectionsByCourseName(ctx context.Context, courseName string) ([]models.Section, error) {
	return uc.candidateSections(ctx, courseName)
}

func (uc *courseUsecase) RecentSearches(ctx context.Context) ([]string, error) {
	return uc.RedisRepository.GetSetMembers(ctx, constvars.RedisKeyRecentSearchesSet)
}

// RefreshSearch re-runs one search against the live catalog, bypassing and
// repopulating the cache. The warmer uses it to keep hot entries fresh.
func (uc *courseUsecase) RefreshSearch(ctx context.Context, courseName string) error {
	_, err := uc.fetchAndCache(ctx, courseName)
	return err
}

// candidateSections resolves a course-name query to the sections of the
// first matching course. The catalog search already narrows by name, so the
// first course is the requested one; no match is an empty slice, not an
// error, because the caller decides whether that is acceptable.
func (uc *courseUsecase) candidateSections(ctx context.Context, query string) ([]models.Section, error) {
	courses, err := uc.domainCourses(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return []models.Section{}, nil
	}
	return courses[0].Sections, nil
}

// domainCourses serves a search from the Redis cache when possible and falls
// back to the live catalog otherwise. Cache failures are logged and degrade
// to a live fetch; the catalog, not the cache, is the source of truth.
func (uc *courseUsecase) domainCourses(ctx context.Context, query string) ([]models.Course, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := searchCacheKey(query)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("course search cache read failed, falling back to catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	if cached != "" {
		var courses []models.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses, nil
		}
		uc.Log.Warn("course search cache entry is corrupt, refetching",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)
	}

	courses, err := uc.fetchAndCache(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.AddToSet(ctx, constvars.RedisKeyRecentSearchesSet, normalizeSearch(query)); err != nil {
		uc.Log.Warn("failed to record recent search",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCourseNameKey, query),
			zap.Error(err),
		)
	}

	return courses, nil
}

func (uc *courseUsecase) fetchAndCache(ctx context.Context, query string) ([]models.Course, error) {
	offerings, err := uc.CatalogClient.SearchOfferings(ctx, query)
	if err != nil {
		return nil, err
	}

	courses, err := BuildCoursesFromOfferings(offerings)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Catalog.SearchCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, searchCacheKey(query), courses, ttl); err != nil {
		uc.Log.Warn("failed to cache course search",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCourseNameKey, query),
			zap.Error(err),
		)
	}

	return courses, nil
}

func normalizeSearch(query string) string {
	return strings.ToUpper(strings.TrimSpace(query))
}

func searchCacheKey(query string) string {
	return constvars.RedisKeyCourseSearchPrefix + normalizeSearch(query)
}
