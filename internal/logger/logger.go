// Package logger configures the process-wide slog logger. Production gets
// JSON on stdout at info level, everything else gets text on stderr at the
// level named by LOG_LEVEL (debug by default).
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger = newLogger()

func newLogger() *slog.Logger {
	if os.Getenv("ENVIRONMENT") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// With returns a child logger carrying the given fields, typically a
// component name.
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ErrorErr logs msg with the error appended as a field.
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// Fatal logs at error level and exits. Only for use from main.
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// FatalErr logs msg with the error appended as a field and exits. Only for
// use from main.
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	Fatal(msg, args...)
}
