package rs01dict

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with rs01dict-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLen adds the bit length field to the logger.
func (l *Logger) WithLen(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogBuild logs a dictionary construction. The length is expected to be
// attached with WithLen.
func (l *Logger) LogBuild(ctx context.Context, b BuildInfo, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "build completed",
		"ones", b.Ones,
		"sparse_groups", b.SparseGroups,
		"dense_groups", b.DenseGroups,
		"index_bits", b.IndexBits,
		"duration", b.Duration,
	)
}

// BuildInfo summarizes one construction for logs and metrics.
type BuildInfo struct {
	Len          uint64
	Ones         uint64
	SparseGroups int
	DenseGroups  int
	IndexBits    uint64
	Duration     time.Duration
}
