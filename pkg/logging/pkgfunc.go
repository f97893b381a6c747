package logging

import (
	"context"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() { defaultLogger.Store(&Logger{}) }

// Default returns the logger used by the package level logging functions.
func Default() *Logger { return defaultLogger.Load() }

// SetDefault replaces the package level logger and returns a function that restores the previous one.
func SetDefault(l *Logger) (restore func()) {
	prev := defaultLogger.Swap(l)
	return func() { defaultLogger.Store(prev) }
}

func Debug(ctx context.Context, msg string, ds ...Detail) {
	Default().Debug(ctx, msg, ds...)
}

func Info(ctx context.Context, msg string, ds ...Detail) {
	Default().Info(ctx, msg, ds...)
}

func Warn(ctx context.Context, msg string, ds ...Detail) {
	Default().Warn(ctx, msg, ds...)
}

func Error(ctx context.Context, msg string, ds ...Detail) {
	Default().Error(ctx, msg, ds...)
}
