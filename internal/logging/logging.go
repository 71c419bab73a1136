// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging constructs the process logger.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a console zerolog.Logger at the provided level string.
func New(level string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(levelFromString(level)).With().Timestamp().Logger()
}

func levelFromString(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
