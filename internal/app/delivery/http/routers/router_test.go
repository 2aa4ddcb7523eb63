package routers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/delivery/http/controllers"
	"senehorario-service/internal/app/delivery/http/middlewares"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/dto/responses"
	"senehorario-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCourseUsecase struct {
	mock.Mock
}

func (m *MockCourseUsecase) FindCourses(ctx context.Context, request *requests.FindCourses) ([]responses.Course, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Course), args.Error(1)
}

func (m *MockCourseUsecase) FindSectionsByCourseCode(ctx context.Context, request *requests.FindSectionsByCourseCode) ([]responses.Section, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Section), args.Error(1)
}

func (m *MockCourseUsecase) CandidateSectionsByCourseName(ctx context.Context, courseName string) ([]models.Section, error) {
	args := m.Called(ctx, courseName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockCourseUsecase) RecentSearches(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCourseUsecase) RefreshSearch(ctx context.Context, courseName string) error {
	args := m.Called(ctx, courseName)
	return args.Error(0)
}

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) GenerateSchedules(ctx context.Context, request *requests.GenerateSchedules) (*responses.GenerateSchedules, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GenerateSchedules), args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Env:                          "development",
			Version:                      "v1",
			Timezone:                     "UTC",
			EndpointPrefix:               "api",
			MaxRequests:                  100,
			GenerateMaxRequestsPerMinute: 30,
			GenerateBlockTimeInMinutes:   5,
		},
	}
}

func setupTestRouter(cfg *config.InternalConfig, courseUsecase *MockCourseUsecase, scheduleUsecase *MockScheduleUsecase) *chi.Mux {
	logger := zap.NewNop()
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)

	courseController := &controllers.CourseController{Log: logger, CourseUsecase: courseUsecase}
	scheduleController := &controllers.ScheduleController{Log: logger, ScheduleUsecase: scheduleUsecase}

	router := chi.NewRouter()
	SetupRoutes(router, cfg, middlewares.NewMiddlewares(logger, cfg), accessLog, courseController, scheduleController)
	return router
}

func TestCourseRoutes(t *testing.T) {
	t.Run("Find Courses Returns The Envelope", func(t *testing.T) {
		mockCourseUsecase := new(MockCourseUsecase)
		mockCourseUsecase.On("FindCourses", mock.Anything, mock.MatchedBy(func(request *requests.FindCourses) bool {
			return request.Name == "algebra"
		})).Return([]responses.Course{{Code: "MATE1101", Title: "ALGEBRA", Credits: 3}}, nil)
		router := setupTestRouter(testConfig(), mockCourseUsecase, new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/courses?name=algebra", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a successful search should return 200")
		assert.Contains(t, rr.Body.String(), `"success":true`, "the envelope should flag success")
		assert.Contains(t, rr.Body.String(), `"MATE1101"`, "the course data should be in the envelope")
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "every response should carry a request ID")
		mockCourseUsecase.AssertExpectations(t)
	})

	t.Run("Find Courses Trims The Name", func(t *testing.T) {
		mockCourseUsecase := new(MockCourseUsecase)
		mockCourseUsecase.On("FindCourses", mock.Anything, mock.MatchedBy(func(request *requests.FindCourses) bool {
			return request.Name == "algebra"
		})).Return([]responses.Course{}, nil)
		router := setupTestRouter(testConfig(), mockCourseUsecase, new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/courses?name=%20algebra%20", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "surrounding whitespace should be stripped before the lookup")
		mockCourseUsecase.AssertExpectations(t)
	})

	t.Run("Find Courses Without A Name Is A Bad Request", func(t *testing.T) {
		mockCourseUsecase := new(MockCourseUsecase)
		router := setupTestRouter(testConfig(), mockCourseUsecase, new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/courses", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "a blank name should be rejected")
		assert.Contains(t, rr.Body.String(), constvars.ErrClientCourseNameRequired, "the client should learn what was missing")
		mockCourseUsecase.AssertNotCalled(t, "FindCourses", mock.Anything, mock.Anything)
	})

	t.Run("Find Sections Routes The Course Code", func(t *testing.T) {
		mockCourseUsecase := new(MockCourseUsecase)
		mockCourseUsecase.On("FindSectionsByCourseCode", mock.Anything, mock.MatchedBy(func(request *requests.FindSectionsByCourseCode) bool {
			return request.Code == "ISIS1105"
		})).Return([]responses.Section{{NRC: "10001", Label: "1"}}, nil)
		router := setupTestRouter(testConfig(), mockCourseUsecase, new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/courses/ISIS1105/sections", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a known course code should return its sections")
		assert.Contains(t, rr.Body.String(), `"10001"`, "the section data should be in the envelope")
		mockCourseUsecase.AssertExpectations(t)
	})

	t.Run("Find Sections Rejects A Malformed Code", func(t *testing.T) {
		mockCourseUsecase := new(MockCourseUsecase)
		router := setupTestRouter(testConfig(), mockCourseUsecase, new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/courses/bad-code/sections", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "a non-alphanumeric code should be rejected")
		mockCourseUsecase.AssertNotCalled(t, "FindSectionsByCourseCode", mock.Anything, mock.Anything)
	})
}

func TestScheduleRoutes(t *testing.T) {
	t.Run("Generate Schedules Posts Through", func(t *testing.T) {
		mockScheduleUsecase := new(MockScheduleUsecase)
		mockScheduleUsecase.On("GenerateSchedules", mock.Anything, mock.MatchedBy(func(request *requests.GenerateSchedules) bool {
			return len(request.Courses) == 2 && request.Courses[0] == "Algebra" && request.Courses[1] == "Fisica"
		})).Return(&responses.GenerateSchedules{Count: 1, Schedules: []responses.Schedule{{Sections: []responses.Section{{NRC: "10001"}}}}}, nil)
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), mockScheduleUsecase)

		body := bytes.NewReader([]byte(`{"courses":[" Algebra ","Fisica"]}`))
		req := httptest.NewRequest("POST", "/api/v1/schedules/generate", body)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a valid request should generate schedules")
		assert.Contains(t, rr.Body.String(), `"count":1`, "the schedule count should be in the envelope")
		mockScheduleUsecase.AssertExpectations(t)
	})

	t.Run("Generate Schedules Rejects An Empty Course List", func(t *testing.T) {
		mockScheduleUsecase := new(MockScheduleUsecase)
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), mockScheduleUsecase)

		body := bytes.NewReader([]byte(`{"courses":[]}`))
		req := httptest.NewRequest("POST", "/api/v1/schedules/generate", body)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "an empty course list should fail validation")
		mockScheduleUsecase.AssertNotCalled(t, "GenerateSchedules", mock.Anything, mock.Anything)
	})

	t.Run("Generate Schedules Rejects A Malformed Body", func(t *testing.T) {
		mockScheduleUsecase := new(MockScheduleUsecase)
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), mockScheduleUsecase)

		body := bytes.NewReader([]byte(`{"courses":`))
		req := httptest.NewRequest("POST", "/api/v1/schedules/generate", body)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "unparsable JSON should be rejected")
	})

	t.Run("Generate Schedules Propagates Usecase Errors", func(t *testing.T) {
		mockScheduleUsecase := new(MockScheduleUsecase)
		mockScheduleUsecase.On("GenerateSchedules", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrCourseNoSections(nil, "Inexistente"))
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), mockScheduleUsecase)

		body := bytes.NewReader([]byte(`{"courses":["Inexistente"]}`))
		req := httptest.NewRequest("POST", "/api/v1/schedules/generate", body)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "an unknown course should surface its status")
		assert.Contains(t, rr.Body.String(), "Inexistente", "the client message should name the course")
	})

	t.Run("Generate Endpoint Has Its Own Rate Limit", func(t *testing.T) {
		cfg := testConfig()
		cfg.App.GenerateMaxRequestsPerMinute = 1
		mockScheduleUsecase := new(MockScheduleUsecase)
		mockScheduleUsecase.On("GenerateSchedules", mock.Anything, mock.Anything).
			Return(&responses.GenerateSchedules{Count: 0, Schedules: []responses.Schedule{}}, nil)
		router := setupTestRouter(cfg, new(MockCourseUsecase), mockScheduleUsecase)

		send := func() *httptest.ResponseRecorder {
			body := bytes.NewReader([]byte(`{"courses":["Algebra"]}`))
			req := httptest.NewRequest("POST", "/api/v1/schedules/generate", body)
			req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusOK, send().Code, "the first request should pass")
		assert.Equal(t, http.StatusTooManyRequests, send().Code, "the next request should hit the generate limit")
	})
}

func TestOperationalRoutes(t *testing.T) {
	t.Run("Health Endpoint Responds", func(t *testing.T) {
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "the health endpoint should answer")
		assert.Contains(t, rr.Body.String(), `"success":true`, "the health answer should use the envelope")
	})

	t.Run("Unknown Routes Are Not Found", func(t *testing.T) {
		router := setupTestRouter(testConfig(), new(MockCourseUsecase), new(MockScheduleUsecase))

		req := httptest.NewRequest("GET", "/api/v1/unknown", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "unknown routes should 404")
	})
}
