package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Embed    EmbedConfig
	Auth     AuthConfig
	Scraper  ScraperConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EmbedConfig points at the external embedding service used as the primary
// similarity backend. An empty URL disables it; similarity then degrades
// to the in-process fallbacks.
type EmbedConfig struct {
	ServiceURL string
	Timeout    time.Duration
}

type AuthConfig struct {
	AdminPasswordHash string
	AccessSecret      string
	RefreshSecret     string
	AccessExpiresIn   time.Duration
	RefreshExpiresIn  time.Duration
}

type ScraperConfig struct {
	BaseURL        string
	UseHeadless    bool
	RequestDelayMs int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		return n
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return def
		}
		return d
	}
	optBool := func(key string, def bool) bool {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Addr:     opt("REDIS_ADDR"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
	}

	cfg.Embed = EmbedConfig{
		ServiceURL: opt("EMBED_SERVICE_URL"),
		Timeout:    optDuration("EMBED_TIMEOUT", 5*time.Second),
	}

	cfg.Auth = AuthConfig{
		AdminPasswordHash: opt("ADMIN_PASSWORD_HASH"),
		AccessSecret:      opt("JWT_ACCESS_SECRET"),
		RefreshSecret:     opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:   optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn:  optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Scraper = ScraperConfig{
		BaseURL:        opt("SCRAPER_BASE_URL"),
		UseHeadless:    optBool("SCRAPER_USE_HEADLESS", false),
		RequestDelayMs: optInt("SCRAPER_REQUEST_DELAY_MS", 500),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
