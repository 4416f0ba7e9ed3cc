// Package logger provides the zerolog-based application logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New constructs the process-wide JSON logger. The service label lets logs
// from this backend be filtered when aggregated with other services.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything, for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
