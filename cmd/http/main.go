package main

import (
	"context"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/delivery/http/controllers"
	"senehorario-service/internal/app/delivery/http/middlewares"
	"senehorario-service/internal/app/delivery/http/routers"
	"senehorario-service/internal/app/drivers/database"
	"senehorario-service/internal/app/drivers/logger"
	"senehorario-service/internal/app/services/core/courses"
	"senehorario-service/internal/app/services/core/schedules"
	"senehorario-service/internal/app/services/shared/locker"
	"senehorario-service/internal/app/services/shared/redis"
	"senehorario-service/internal/app/services/uniandes/catalog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	accessLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		accessLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, accessLog)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, accessLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			accessLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		accessLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		accessLog.Printf("Error during shutdown: %v", err)
	}

	accessLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLog *logrus.Logger) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// University catalog
	catalogClient := catalog.NewUniandesCatalogClient(bootstrap.InternalConfig)

	// Courses
	courseUsecase := courses.NewCourseUsecase(catalogClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	courseController := controllers.NewCourseController(bootstrap.Logger, courseUsecase)

	// Schedules
	scheduleUsecase := schedules.NewScheduleUsecase(courseUsecase, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Cache warmer
	warmer := courses.NewWarmer(bootstrap.Logger, bootstrap.InternalConfig, lockerService, courseUsecase)
	warmer.Start(context.Background())
	bootstrap.WarmerStop = warmer.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, accessLog, courseController, scheduleController)
}
