package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values.
// Tags like `envconfig:"APP_PORT"` specify the environment variable name;
// `default:""` supplies a value when the variable is unset.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	HTTPServer ServerConfig
	Persist    PersistConfig
	Catalog    CatalogConfig
	Session    SessionConfig
	JWTSecret  string `envconfig:"JWT_SECRET" default:"storefront-dev-secret"`
}

// ServerConfig holds HTTP server-specific configuration.
type ServerConfig struct {
	Port         string        `envconfig:"APP_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_TIMEOUT_IDLE" default:"60s"`
}

// PersistConfig selects and configures the key-value persistence backend.
// Backend is one of "memory", "redis" or "postgres".
type PersistConfig struct {
	Backend     string        `envconfig:"PERSIST_BACKEND" default:"memory"`
	RedisURL    string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	KeyPrefix   string        `envconfig:"PERSIST_KEY_PREFIX" default:"storefront"`
	TTL         time.Duration `envconfig:"PERSIST_TTL" default:"720h"`
}

// CatalogConfig tunes the simulated catalog backend.
type CatalogConfig struct {
	LatencyBase   time.Duration `envconfig:"CATALOG_LATENCY_BASE" default:"150ms"`
	LatencyJitter time.Duration `envconfig:"CATALOG_LATENCY_JITTER" default:"250ms"`
}

// SessionConfig controls browser session cookies and store lifetime.
type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE" default:"storefront_session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// Load reads the configuration from environment variables.
// It should be called once during application startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	switch cfg.Persist.Backend {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("invalid PERSIST_BACKEND %q (want memory, redis or postgres)", cfg.Persist.Backend)
	}
	if cfg.Persist.Backend == "postgres" && cfg.Persist.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when PERSIST_BACKEND=postgres")
	}
	return &cfg, nil
}
