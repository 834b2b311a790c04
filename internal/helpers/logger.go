package helpers

import (
	"io"
	"log/slog"
	"os"
)

// NewNoopLogger returns a logger that discards everything.
func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewLogger returns the JSON logger used by the CLI. Each verbosity step
// lowers the threshold by one slog level, starting at warn.
func NewLogger(verbosity int, callerTrace bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: callerTrace,
		Level:     slog.LevelWarn - slog.Level(verbosity*4),
	}))
}
