package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":             "is required",
	"alphanum":             "must contain only alphanumeric characters",
	"numeric":              "must be a number",
	"min":                  "must be at least %s",
	"max":                  "must be at most %s",
	"len":                  "must be %s characters long",
	"oneof":                "must be one of [%s]",
	"gt":                   "must be greater than %s",
	"gte":                  "must be greater than or equal to %s",
	"lt":                   "must be less than %s",
	"lte":                  "must be less than or equal to %s",
	"url":                  "must be a valid URL",
	"uuid":                 "must be a valid UUID",
	"excludes":             "must not contain %s",
	"required_if":          "is required when %s is %s",
	"required_unless":      "is required unless %s is %s",
	"required_with":        "is required when %s is present",
	"required_without":     "is required when %s is not present",
	"required_without_all": "is required when none of [%s] are present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":                  true,
	"max":                  true,
	"len":                  true,
	"oneof":                true,
	"gt":                   true,
	"gte":                  true,
	"lt":                   true,
	"lte":                  true,
	"excludes":             true,
	"required_if":          true,
	"required_unless":      true,
	"required_with":        true,
	"required_without":     true,
	"required_without_all": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientCourseNameRequired            = "course name is required"
	ErrClientCourseNotFound                = "no sections found for course '%s'"
	ErrClientCourseSlotEmpty               = "course slot %d has no candidate sections to choose from"
	ErrClientCatalogUnavailable            = "the university catalog is not responding, please try again later"
	ErrClientCatalogBadData                = "the university catalog returned data we could not understand"
	ErrClientNoCoursesRequested            = "no courses were provided to build schedules from"
	ErrClientTooManySchedulesRequests      = "too many schedule requests, please slow down and try again shortly"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime   = "cannot parse time into the given format"
	ErrDevInvalidFormat     = "invalid %s format"
	ErrDevBuildRequest      = "encountering error while building request DTO"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Catalog messages
	ErrDevCatalogSearchRequest    = "failed to query course offerings from the university catalog"
	ErrDevCatalogBadStatus        = "university catalog responded with status %d"
	ErrDevCatalogDecodeResponse   = "failed to decode course offerings response from the university catalog"
	ErrDevCatalogBadTimeString    = "invalid time format when trying to parse: %s"
	ErrDevCatalogBadNumericField  = "invalid numeric value for %s: %s"
	ErrDevCatalogBadMeetingWindow = "catalog meeting window is not a valid time range"
	ErrDevCatalogLimiterWait      = "catalog rate limiter wait aborted"

	// Generator messages
	ErrDevCandidatesNil      = "candidate set is nil"
	ErrDevCandidateSlotEmpty = "course slot %d has no candidate sections"
	ErrDevCourseNoSections   = "course '%s' resolved to zero sections"

	// Validation messages
	ErrDevMissingRequestID           = "request ID not found in request context"
	ErrDevMissingCourseName          = "course name query parameter is empty"
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisExpireKey  = "failed to EXPIRE key in redis"
	ErrDevRedisSAdd       = "failed to SAdd data into set in redis"
	ErrDevRedisSMembers   = "failed to SMembers data from set in redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerBadRequest       = "bad request"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Miscellaneous messages
	ErrDevServiceUnavailable        = "service temporarily unavailable"
	ErrDevOperationTimedOut         = "operation timed out"
	ErrDevRequestLimitExceeded      = "request limit exceeded"
	ErrDevGenerateRateLimitExceeded = "schedule generation rate limit exceeded for client"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
