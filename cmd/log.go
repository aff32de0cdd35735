package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger reports diagnostics on stderr. Reports go to stdout.
var logger = zerolog.Nop()

// newLogger creates a console logger at level, or debug when verbose.
func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
