package app

import (
	"io"
	"log/slog"
	"os"
)

// Environment variables controlling the application logger. The CLI surface
// is a fixed catalog, so logging configuration comes from the environment
// instead of flags.
const (
	envLogLevel  = "MICROVM_LOG_LEVEL"
	envLogFormat = "MICROVM_LOG_FORMAT"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// newLoggerFromEnv builds the application logger from the MICROVM_LOG_LEVEL
// and MICROVM_LOG_FORMAT environment variables.
func newLoggerFromEnv(outW io.Writer) *slog.Logger {
	return newLogger(os.Getenv(envLogLevel), os.Getenv(envLogFormat), outW)
}
