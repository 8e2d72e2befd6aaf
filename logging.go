package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// === LOGGING ===

// newLogger returns the application logger. The terminal belongs to the
// animation, so debug logs go to cfg.LogFile; without debug everything is
// discarded. The returned closer releases the log file.
func newLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	if !cfg.Debug {
		return newNopLogger(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newTextLogger(f, slog.LevelDebug), f, nil
}

// newTextLogger writes text records to w, standardizing "error" to "err".
func newTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// newNopLogger returns a logger that discards everything.
func newNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
