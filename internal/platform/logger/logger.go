// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a new zerolog.Logger configured for the application.
func New(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stderr).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// WithLevel returns a service logger filtered at the named level; unknown
// names fall back to info.
func WithLevel(serviceName, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return New(serviceName).Level(lvl)
}
