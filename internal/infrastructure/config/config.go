package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret deliberately has no default: an absent secret must stop
	// the process at startup, never fall back to a hardcoded value.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`

	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:5173"`

	RateLimit RateLimitConfig
	Mongo     MongoConfig
	Redis     RedisConfig

	IngestWorkers int `env:"INGEST_WORKERS, default=4"`
}

type RateLimitConfig struct {
	MaxRequests int           `env:"LOGIN_RATE_MAX,    default=5"`
	Window      time.Duration `env:"LOGIN_RATE_WINDOW, default=60s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=farm_management"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
