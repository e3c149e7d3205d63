package config

const (
	EnvPrefix = "CLOTHINGSTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	KVDriverSQLite = "sqlite"
	KVDriverRedis  = "redis"

	EnvAppEnv          = "CLOTHINGSTORE_APP_ENV"
	EnvPort            = "CLOTHINGSTORE_APP_PORT"
	EnvUpstreamBaseURL = "CLOTHINGSTORE_UPSTREAM_BASE_URL"
	EnvKVDriver        = "CLOTHINGSTORE_KV_DRIVER"
	EnvRedisURL        = "CLOTHINGSTORE_REDIS_URL"
	EnvJWTSecret       = "CLOTHINGSTORE_JWT_SECRET"
)
