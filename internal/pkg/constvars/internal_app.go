package constvars

type ContextKey string

const (
	ResourceCourses   = "courses"
	ResourceSections  = "sections"
	ResourceSchedules = "schedules"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SENEH_SVC_"
)

const (
	RedisKeyCourseSearchPrefix = "catalog:search:"
	RedisKeyRecentSearchesSet  = "catalog:recent_searches"
	RedisKeyWarmerLeaderLock   = "warmer:leader"
)
