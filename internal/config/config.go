// Package config handles configuration loading, validation, and management for wakeguard.
package config

import (
	"os"
	"strconv"
	"time"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete wakeguard configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Keeper configuration for the keep-awake loop.
	Keeper KeeperConfig `toml:"keeper" json:"keeper" yaml:"keeper"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// KeeperConfig holds the keep-awake loop configuration.
type KeeperConfig struct {
	// IntervalSec is the delay in seconds between loop cycles. The awake
	// assertion is refreshed once per cycle.
	IntervalSec int `toml:"interval_sec" json:"interval_sec" yaml:"interval_sec"`

	// MouseNudge enables the synthetic one-unit pointer move on each cycle.
	MouseNudge bool `toml:"mouse_nudge" json:"mouse_nudge" yaml:"mouse_nudge"`

	// KeepDisplay additionally suppresses display sleep, not just system
	// sleep. Matches the platform's "display required" assertion flag.
	KeepDisplay bool `toml:"keep_display" json:"keep_display" yaml:"keep_display"`
}

// Interval returns the cycle interval as a time.Duration.
func (k KeeperConfig) Interval() time.Duration {
	return time.Duration(k.IntervalSec) * time.Second
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the output format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output specifies where logs are written: "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file path when Output includes "file".
	// Empty selects the platform default.
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with WAKEGUARD_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("WAKEGUARD_INTERVAL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Keeper.IntervalSec = n
		}
	}
	if v := os.Getenv("WAKEGUARD_MOUSE_NUDGE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Keeper.MouseNudge = b
		}
	}
	if v := os.Getenv("WAKEGUARD_KEEP_DISPLAY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Keeper.KeepDisplay = b
		}
	}
	if v := os.Getenv("WAKEGUARD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WAKEGUARD_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("WAKEGUARD_LOG_OUTPUT"); v != "" {
		c.Logging.Output = v
	}
	if v := os.Getenv("WAKEGUARD_LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
}
