package routers

import (
	"senehorario-service/internal/app/delivery/http/controllers"
	"senehorario-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.With(middlewares.GenerateRateLimit()).Post("/generate", scheduleController.GenerateSchedules)
}
