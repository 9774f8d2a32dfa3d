package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration.
// Environment variables are parsed from the HOMEMANAGER_ prefix,
// e.g. HOMEMANAGER_LOGIN_DELAY, HOMEMANAGER_DATA_DIR.
type Config struct {
	// DataDir overrides where local state lives. Empty means ~/.homemanager.
	DataDir string `envconfig:"DATA_DIR" default:""`

	// LoginDelay is the simulated auth round trip.
	LoginDelay time.Duration `envconfig:"LOGIN_DELAY" default:"1s"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// RecurrenceSpec is the cron schedule for rolling recurring todos.
	RecurrenceSpec string `envconfig:"RECURRENCE_SPEC" default:"@hourly"`
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("HOMEMANAGER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative")
	}
	return nil
}
