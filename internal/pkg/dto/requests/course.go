package requests

type FindCourses struct {
	Name string `json:"name" validate:"required"`
}

type FindSectionsByCourseCode struct {
	Code string `json:"code" validate:"required,alphanum"`
}
