// Package ui holds the process's observable surface: structured logging
// via rs/zerolog and install progress rendering via schollz/progressbar
// and fatih/color.
package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Log is the process-wide logger, level-controlled by FORGE_LOG_LEVEL
// (debug/info/warn/error), defaulting to info.
var Log = newLogger()

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("FORGE_LOG_LEVEL")); err == nil {
		level = lv
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// SetVerbose raises the logger to debug level.
func SetVerbose() {
	Log = Log.Level(zerolog.DebugLevel)
}
