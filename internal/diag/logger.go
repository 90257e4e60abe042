// Package diag provides the diagnostic logger used by the index and the name cache.
package diag

import (
	"io"
	"log/slog"
	"os"
)

// Logger receives diagnostics. *slog.Logger implements it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultLogger writes prefixed text records through log/slog.
type DefaultLogger struct {
	logger *slog.Logger
}

const prefix = "[multitag] "

// NewDefaultLogger creates a text logger writing to stderr.
func NewDefaultLogger(level slog.Level) *DefaultLogger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a text logger writing to w.
func NewWriterLogger(w io.Writer, level slog.Level) *DefaultLogger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &DefaultLogger{logger: logger}
}

// Debug logs at debug level.
func (d *DefaultLogger) Debug(msg string, args ...any) {
	d.logger.Debug(prefix+msg, args...)
}

// Info logs at info level.
func (d *DefaultLogger) Info(msg string, args ...any) {
	d.logger.Info(prefix+msg, args...)
}

// Warn logs at warn level.
func (d *DefaultLogger) Warn(msg string, args ...any) {
	d.logger.Warn(prefix+msg, args...)
}

// Error logs at error level.
func (d *DefaultLogger) Error(msg string, args ...any) {
	d.logger.Error(prefix+msg, args...)
}

// OrDefault returns l, or a warn level stderr logger when l is nil.
func OrDefault(l Logger) Logger {
	if l == nil {
		return NewDefaultLogger(slog.LevelWarn)
	}

	return l
}

// ParseLevel maps the names debug, info, warn and error to slog levels. Unknown
// names map to warn.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn
	}

	return l
}
