// Package logging holds the zap logger shared by every lowdash_go package.
//
// The library is silent by default. Install a logger with SetLogger to see
// debug records for wrapper creation, curry re-wrapping and cache setup.
package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package-wide logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	nop := zap.NewNop()
	if logger.CompareAndSwap(nil, nop) {
		return nop
	}
	return logger.Load()
}

// SetLogger replaces the package-wide logger and returns the previous one.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	if prev == nil {
		prev = zap.NewNop()
	}
	return prev
}

// NewDevelopment builds a console logger writing debug records to stdout.
func NewDevelopment() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}
