package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Short-rest healing modes
const (
	HealingAverage = "average"
	HealingRoll    = "roll"
)

// Config holds all configuration for the engine
type Config struct {
	Redis   RedisConfig
	DND5E   DND5EConfig
	Logging LoggingConfig
	Rules   RulesConfig
}

// RedisConfig holds resource-state storage configuration
type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string        `env:"REDIS_KEY_PREFIX" envDefault:"engine"`
	TTL       time.Duration `env:"RESOURCE_TTL" envDefault:"0s"`
}

// DND5EConfig holds remote reference data configuration
type DND5EConfig struct {
	Remote  bool          `env:"DND5E_REMOTE" envDefault:"false"`
	Timeout time.Duration `env:"DND5E_API_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// RulesConfig holds house-rule switches
type RulesConfig struct {
	ShortRestHealing string `env:"SHORT_REST_HEALING" envDefault:"average"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Rules.ShortRestHealing {
	case HealingAverage, HealingRoll:
	default:
		return nil, fmt.Errorf("SHORT_REST_HEALING must be %q or %q, got %q",
			HealingAverage, HealingRoll, cfg.Rules.ShortRestHealing)
	}

	return cfg, nil
}
