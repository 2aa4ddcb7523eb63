package routers

import (
	"fmt"
	"net/http"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/delivery/http/controllers"
	"senehorario-service/internal/app/delivery/http/middlewares"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	courseController *controllers.CourseController,
	scheduleController *controllers.ScheduleController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "service is healthy", nil)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceCourses), func(r chi.Router) {
				attachCourseRoutes(r, middlewares, courseController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceSchedules), func(r chi.Router) {
				attachScheduleRoutes(r, middlewares, scheduleController)
			})
		})
	})
}
