package infrastructure

import (
	"context"
	"log/slog"

	"weatherhistory.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps logger; a nil logger writes through slog.Default at call time
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: logger}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLoggerAdapter) log(level slog.Level, msg string, fields []ports.Field) {
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			attrs = append(attrs, slog.String(field.Key, err.Error()))
			continue
		}
		attrs = append(attrs, slog.Any(field.Key, field.Value))
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}
