package routers

import (
	"fmt"
	"senehorario-service/internal/app/delivery/http/controllers"
	"senehorario-service/internal/app/delivery/http/middlewares"
	"senehorario-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachCourseRoutes(router chi.Router, middlewares *middlewares.Middlewares, courseController *controllers.CourseController) {
	router.Get("/", courseController.FindCourses)
	router.Get(fmt.Sprintf("/{%s}/%s", constvars.URLParamCourseCode, constvars.ResourceSections), courseController.FindSectionsByCourseCode)
}
