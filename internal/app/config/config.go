package config

import (
	"senehorario-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Address:                      utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			GenerateMaxRequestsPerMinute: utils.GetEnvInt("APP_GENERATE_MAX_REQUESTS_PER_MINUTE", 30),
			GenerateBlockTimeInMinutes:   utils.GetEnvInt("APP_GENERATE_BLOCK_TIME_IN_MINUTES", 5),
			CacheWarmerCronSpec:          utils.GetEnvString("APP_CACHE_WARMER_CRON_SPEC", "@every 10m"),
		},
		Catalog: AppCatalog{
			BaseUrl:                 utils.GetEnvString("CATALOG_BASE_URL", "https://ofertadecursos.uniandes.edu.co/api/courses"),
			RequestTimeoutInSeconds: utils.GetEnvInt("CATALOG_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestsPerSecond:       utils.GetEnvFloat("CATALOG_REQUESTS_PER_SECOND", 4),
			SearchCacheTTLInMinutes: utils.GetEnvInt("CATALOG_SEARCH_CACHE_TTL_IN_MINUTES", 15),
		},
	}
}
