// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// WindowTitle is the title of the emulator window.
const WindowTitle = "nesgoemu"

// CreateLogger creates a logger with appropriate settings.
// Debug logging includes a trace of every executed instruction,
// quiet mode only reports errors.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
