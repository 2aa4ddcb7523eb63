package utils

import (
	"senehorario-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeFindCoursesRequest(input *requests.FindCourses) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeGenerateSchedulesRequest(input *requests.GenerateSchedules) {
	input.Courses = cleanWhiteSpaceFromEachStringOfAnArray(input.Courses)
}
