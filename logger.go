package liveset

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with liveset-specific context.
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

// WithFunction adds a function name field to the logger.
func (l *Logger) WithFunction(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("function", name),
	}
}

// WithBlocks adds a block count field to the logger.
func (l *Logger) WithBlocks(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("blocks", n),
	}
}

// WithVars adds a variable count field to the logger.
func (l *Logger) WithVars(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("vars", n),
	}
}

// LogAnalysis logs the outcome of analyzing one function.
func (l *Logger) LogAnalysis(ctx context.Context, passes int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "analysis failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "analysis completed",
			"passes", passes,
			"duration", duration,
		)
	}
}

// LogBatch logs a batch analysis.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, duration time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "batch analysis completed with failures",
			"total", count,
			"failed", failed,
			"duration", duration,
		)
	} else {
		l.InfoContext(ctx, "batch analysis completed",
			"count", count,
			"duration", duration,
		)
	}
}
