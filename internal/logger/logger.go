// Package logger holds the process-wide sugared Zap logger used across the
// API: request logging middleware, error responses, and the audit trail all
// share this one instance.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment: a JSON
// encoder for "production", a human-readable console encoder otherwise
// (development, test). Repeated calls are no-ops.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// if Init has not run yet.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries; deferred from main before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
