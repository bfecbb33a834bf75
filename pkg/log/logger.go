// Package log wraps zerolog construction for the application.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the application logger type.
type Logger = zerolog.Logger

// New builds a logger for the given environment and level. Local runs get
// a human-readable console writer; everything else stays structured JSON
// on stderr.
func New(env, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if env == "local" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(lvl)
}
