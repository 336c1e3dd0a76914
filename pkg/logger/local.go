package logger

import (
	"log/slog"
	"os"
)

// NewLocalHandler writes human readable lines to stderr for local runs.
func NewLocalHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}
