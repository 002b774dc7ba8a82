// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a new zerolog.Logger for the application. Unknown levels
// fall back to info.
func New(serviceName, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).Level(parsed).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
