// Package logging constructs the slog loggers used by the yamlkeep CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a text-handler slog.Logger writing to w. The level is
// parsed from the given string; invalid or empty defaults to INFO.
func NewLogger(level string, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR", "QUIET":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
