package logger

import (
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
)

// NoopLogger discards every entry. Used when logging is disabled.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

// SetLevel records the level so GetLevel reflects it
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

// Debug discards the entry
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info discards the entry
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn discards the entry
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error discards the entry
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error { return nil }
