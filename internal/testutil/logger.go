package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/usersync/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything written to it.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
