package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	KV       KVConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cart     CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.KV.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CLOTHINGSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"CLOTHINGSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CLOTHINGSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CLOTHINGSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the gateway at the marketplace API.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"CLOTHINGSTORE_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CLOTHINGSTORE_UPSTREAM_TIMEOUT" default:"10s"`
}

// KVConfig selects the device-local key-value store used for cart state.
type KVConfig struct {
	Driver     string `envconfig:"CLOTHINGSTORE_KV_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"CLOTHINGSTORE_KV_SQLITE_PATH" default:"clothingstore.db"`
}

func (kv KVConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(kv.Driver)) {
	case KVDriverSQLite, KVDriverRedis:
		return nil
	default:
		return fmt.Errorf("unknown kv driver %q (expected %s or %s)", kv.Driver, KVDriverSQLite, KVDriverRedis)
	}
}

// IsRedis reports whether the redis driver is selected.
func (kv KVConfig) IsRedis() bool {
	return strings.EqualFold(strings.TrimSpace(kv.Driver), KVDriverRedis)
}

type RedisConfig struct {
	URL          string        `envconfig:"CLOTHINGSTORE_REDIS_URL"`
	Address      string        `envconfig:"CLOTHINGSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"CLOTHINGSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CLOTHINGSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CLOTHINGSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CLOTHINGSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CLOTHINGSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CLOTHINGSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CLOTHINGSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"CLOTHINGSTORE_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"CLOTHINGSTORE_JWT_ISSUER"`
}

type CartConfig struct {
	ClearOnLogout bool `envconfig:"CLOTHINGSTORE_CLEAR_CART_ON_LOGOUT" default:"true"`
}
