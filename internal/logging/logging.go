// Package logging builds the root zerolog logger shared by all components.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the root logger at the given level. An unknown level falls
// back to info. Pretty console output is used when CONSOLE_LOG is set,
// JSON otherwise.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if os.Getenv("CONSOLE_LOG") != "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(lvl).With().Timestamp().Logger()
}
