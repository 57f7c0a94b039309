package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the console logger used by the run command. Verbose
// lowers the level to debug so individual steps are shown.
func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).With().Timestamp().Str("app", "tagcell").Logger().Level(level)
}
