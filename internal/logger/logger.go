package logger

import (
	"sync"
)

// Log levels accepted by Get and New.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the process-wide logger used by cmd.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. The first call fixes the level;
// later calls return the same instance and ignore the argument.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}

// New builds an independent logger, useful when a component needs its own level.
func New(level string) *Logger {
	return newZapLogger(level)
}

// OrNop returns l, or a no-op logger when l is nil.
// Components accept a nil logger and call this once at construction.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}
