// Package logging provides shared logging configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const defaultLogLevel = slog.LevelDebug

// Init configures the default slog logger. When path is non-empty, records
// are appended to that file; otherwise they go to stderr. The level defaults
// to DEBUG and can be overridden with the "LOG_LEVEL" environment variable.
func Init(path string) error {
	level := defaultLogLevel
	if levelText, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := level.UnmarshalText([]byte(levelText)); err != nil {
			level = defaultLogLevel
		}
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
