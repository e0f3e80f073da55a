// Package config provides configuration loading and parsing for autobind.
package config

import (
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config represents the complete autobind configuration.
type Config struct {
	Registration RegistrationConfig `yaml:"registration" toml:"registration"`
	Logging      LoggingConfig      `yaml:"logging" toml:"logging"`
}

// RegistrationConfig controls how the registration driver runs.
type RegistrationConfig struct {
	// Policy selects the abstraction-derivation policy.
	// Options: marker (default), convention.
	Policy string `yaml:"policy" toml:"policy"`

	// Workers bounds the number of modules scanned in parallel.
	// Zero or negative means one worker per CPU.
	Workers int `yaml:"workers" toml:"workers"`

	// Modules restricts registration to the listed modules.
	// Empty means every module in the catalog.
	Modules []string `yaml:"modules" toml:"modules"`
}

// EffectiveWorkers returns the worker bound with the CPU-count default applied.
func (r *RegistrationConfig) EffectiveWorkers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
	Pretty bool   `yaml:"pretty" toml:"pretty"` // enable colored console output
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Registration: RegistrationConfig{Policy: "marker"},
		Logging:      LoggingConfig{Level: LevelInfo, Format: "console"},
	}
}
