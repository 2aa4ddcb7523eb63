package constvars

const (
	URLParamCourseCode = "course_code"
)

const (
	URLQueryParamName = "name"
)
