package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendRemote   Backend = "remote"
)

type Config struct {
	Service         string        `env:"SERVICE_NAME" envDefault:"catalog" validate:"required"`
	Port            string        `env:"PORT" envDefault:"8082" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitPerMin int           `env:"RATE_LIMIT_PER_MIN" envDefault:"120" validate:"gte=0"`

	Catalog  Catalog
	Postgres Postgres
	Metrics  Metrics
}

type Catalog struct {
	Backend   Backend       `env:"CATALOG_BACKEND" envDefault:"memory" validate:"oneof=memory postgres remote"`
	SeedPath  string        `env:"CATALOG_SEED_PATH"`
	Latency   time.Duration `env:"CATALOG_LATENCY" envDefault:"0s"`
	CacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
	RemoteURL string        `env:"CATALOG_REMOTE_URL" validate:"required_if=Backend remote"`
}

type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

type Metrics struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Token   string `env:"METRICS_TOKEN" json:"-"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Catalog.Backend == BackendPostgres && c.Postgres.DSN == "" {
		return errors.New("config: PG_DSN is required for the postgres backend")
	}
	if c.Catalog.Latency < 0 {
		return errors.New("config: CATALOG_LATENCY must not be negative")
	}
	if c.Catalog.CacheTTL < 0 {
		return errors.New("config: CATALOG_CACHE_TTL must not be negative, use 0 to disable the cache")
	}
	return nil
}
