package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Course-related messages
	GetCoursesSuccessMessage  = "get courses successfully"
	GetSectionsSuccessMessage = "get sections successfully"

	// Schedule-related messages
	GenerateSchedulesSuccessMessage = "schedules generated successfully"
)
