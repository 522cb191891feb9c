package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger. Call once during startup.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the process-wide logger, lazily creating a production logger if none is set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		zl, err := zap.NewProduction()
		if err != nil {
			zl = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: zl}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// fromContext attaches trace correlation when ctx carries a New Relic transaction
func fromContext(ctx context.Context) *ZapLogger {
	return GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
}

// InfoCtx logs an info message correlated with the transaction in ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning message correlated with the transaction in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error message correlated with the transaction in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}

// DebugCtx logs a debug message correlated with the transaction in ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Debug(msg, fields...)
}
