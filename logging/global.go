package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger Logger
	globalMu     sync.RWMutex
)

// Global returns the global logger, creating one with defaults on
// first use.
func Global() Logger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogger(DefaultConfig())
	}
	return globalLogger
}

// SetGlobal replaces the global logger.
func SetGlobal(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Init initializes the global logger from the given config.
func Init(config Config) {
	SetGlobal(NewLogger(config))
}

// Info logs a message at InfoLevel using the global logger.
func Info(msg string, fields ...zap.Field) { Global().Info(msg, fields...) }

// Warn logs a message at WarnLevel using the global logger.
func Warn(msg string, fields ...zap.Field) { Global().Warn(msg, fields...) }

// Error logs a message at ErrorLevel using the global logger.
func Error(msg string, fields ...zap.Field) { Global().Error(msg, fields...) }

// Sync flushes the global logger.
func Sync() error { return Global().Sync() }
