package main

import (
	"log/slog"
	"os"
	"strings"
)

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the given level and format. Unknown
// levels fall back to info, unknown formats to JSON. Diagnostics go to
// stderr so they never mix with anything a pipeline captures from stdout.
func SetupLogger(level, format string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info", "":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
