package config

type InternalConfig struct {
	App     App
	Catalog AppCatalog
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	// GenerateMaxRequestsPerMinute caps how often a single client may call the
	// schedule-generation endpoint within one minute; once exceeded the client
	// is blocked for GenerateBlockTimeInMinutes.
	GenerateMaxRequestsPerMinute int
	GenerateBlockTimeInMinutes   int
	// CacheWarmerCronSpec defines the cron expression for the catalog cache
	// warmer schedule (e.g., "@daily")
	CacheWarmerCronSpec string
}

type AppCatalog struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	RequestsPerSecond       float64
	SearchCacheTTLInMinutes int
}
