// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Config is the process configuration
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// RedisURL selects Redis backed repositories. Empty keeps everything in memory.
	RedisURL string `env:"REDIS_URL"`

	GRPCAddr    string `env:"GRPC_ADDR" envDefault:":50051"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	WorldID   string `env:"WORLD_ID" envDefault:"default"`
	WorldFile string `env:"WORLD_FILE"`

	EnableSRD     bool          `env:"ENABLE_SRD" envDefault:"false"`
	SRDPackID     string        `env:"SRD_PACK_ID" envDefault:"srd.equipment"`
	SRDCacheTTL   time.Duration `env:"SRD_CACHE_TTL" envDefault:"24h"`
	TextRowPolicy string        `env:"TEXT_ROW_POLICY" envDefault:"common"`

	Concurrency int           `env:"LOOT_CONCURRENCY" envDefault:"4"`
	SessionTTL  time.Duration `env:"LOOT_SESSION_TTL" envDefault:"30m"`
}

// Load reads an optional .env file and then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LOG_LEVEL", "unknown level %q", c.LogLevel)
	}
	if c.Concurrency < 1 {
		vb.Fieldf("LOOT_CONCURRENCY", "must be at least 1, got %d", c.Concurrency)
	}
	if c.SessionTTL <= 0 {
		vb.Field("LOOT_SESSION_TTL", "must be positive")
	}
	switch c.TextRowPolicy {
	case "common", "skip":
	default:
		vb.Fieldf("TEXT_ROW_POLICY", "must be common or skip, got %q", c.TextRowPolicy)
	}
	errors.ValidateRequired("WORLD_ID", c.WorldID, vb)

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
