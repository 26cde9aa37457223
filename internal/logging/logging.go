package logging

import (
	"io"
	"log/slog"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup configures the debug logger. With verbose enabled, debug-level
// records are emitted; otherwise only warnings and errors pass through.
// With jsonFormat, records are written as JSON lines instead of text.
func Setup(verbose, jsonFormat bool, w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	logger = slog.New(handler)
	mu.Unlock()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug-level record
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info logs an info-level record
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs a warning-level record
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error logs an error-level record
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}
