// Package logger provides structured logging utilities for cataziza.
// It includes handler selection and context deadline helpers.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Initialize sets up the global slog logger.
// Human runs get a colored tint handler on stderr; --log-json switches to
// JSON for CI pipelines and log shippers.
func Initialize(level slog.Level, jsonOutput bool) *slog.Logger {
	var handler slog.Handler

	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "level", level, "json", jsonOutput)

	return logger
}
