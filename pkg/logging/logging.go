// Package logging provides structured logging utilities using zerolog.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger initializes and configures a zerolog Logger. The log level
// comes from levelOverride, falling back to the PDFSTAMP_LOG_LEVEL
// environment variable and finally to INFO.
func InitLogger(levelOverride string) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(output).With().Timestamp().Logger()
	loglevelString := levelOverride
	if loglevelString == "" {
		loglevelString = os.Getenv("PDFSTAMP_LOG_LEVEL")
	}
	if loglevelString == "" {
		loglevelString = "info"
	}
	level, err := zerolog.ParseLevel(loglevelString)
	if err != nil || level == zerolog.NoLevel {
		logger.Info().Msg("Invalid log level, defaulting to INFO")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)
	logger.Debug().Msg("Logger initialized to " + strings.ToUpper(level.String()))
	return logger
}
