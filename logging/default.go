package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// DefaultLogger writes human-readable output to stderr through log/slog
// with the tint handler. Debug messages are suppressed until the level is
// lowered with SetLevel.
type DefaultLogger struct {
	sl    *slog.Logger
	level *slog.LevelVar
}

// NewDefaultLogger creates a new default logger at InfoLevel
func NewDefaultLogger() *DefaultLogger {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
	})

	return &DefaultLogger{
		sl:    slog.New(handler),
		level: lvl,
	}
}

func slogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fieldArgs flattens Fields maps into slog key/value arguments
func fieldArgs(fields []Fields) []any {
	var args []any
	for _, f := range fields {
		for k, v := range f {
			args = append(args, k, v)
		}
	}
	return args
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.sl.Debug(msg, fieldArgs(fields)...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.sl.Info(msg, fieldArgs(fields)...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.sl.Warn(msg, fieldArgs(fields)...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	args := fieldArgs(fields)
	if err != nil {
		args = append(args, tint.Err(err))
	}
	d.sl.Error(msg, args...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{
		sl:    d.sl.With(fieldArgs([]Fields{fields})...),
		level: d.level,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level.Set(slogLevel(level))
}

// NoOpLogger is a logger that does nothing - useful for tests or when
// logging is disabled
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
