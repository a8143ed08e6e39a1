package acumesh

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with acumesh-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCells adds a cell-count field to the logger.
func (l *Logger) WithCells(cells int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cells", cells),
	}
}

// LogFullPass logs a full scoring pass.
func (l *Logger) LogFullPass(ctx context.Context, cells, k int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "full pass failed",
			"cells", cells,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "full pass completed",
			"cells", cells,
			"k", k,
			"duration", duration,
		)
	}
}

// LogIncremental logs an incremental rescoring pass.
func (l *Logger) LogIncremental(ctx context.Context, changed, k int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "incremental pass failed",
			"changed", changed,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "incremental pass completed",
			"changed", changed,
			"k", k,
			"duration", duration,
		)
	}
}

// LogSessionFlush logs a live-session flush.
func (l *Logger) LogSessionFlush(ctx context.Context, dirty int, flushed bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "session flush failed",
			"dirty", dirty,
			"error", err,
		)
	case !flushed:
		l.DebugContext(ctx, "session flush skipped",
			"dirty", dirty,
		)
	default:
		l.DebugContext(ctx, "session flush completed",
			"dirty", dirty,
		)
	}
}
