package logger

import (
	"log/slog"
	"strings"
)

func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	h := handler(getSlogLevel(level))
	return slog.New(h)
}

// HandlerFor picks the handler constructor for a LOGFORMAT value.
// Anything other than "text" gets the Cloud Run JSON handler.
func HandlerFor(format string) func(level slog.Level) slog.Handler {
	switch strings.ToLower(format) {
	case "text":
		return NewLocalHandler
	default:
		return NewCloudRunHandler
	}
}

// ---- Helpers ----
func getSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
