// Package config handles configuration loading, validation, and management for wakeguard.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default values for the keep-awake loop.
const (
	// DefaultIntervalSec is the default delay between loop cycles.
	DefaultIntervalSec = 60

	// DefaultKeepDisplay suppresses display sleep by default, matching the
	// full "system + display required" assertion.
	DefaultKeepDisplay = true
)

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Keeper: KeeperConfig{
			IntervalSec: DefaultIntervalSec,
			MouseNudge:  false,
			KeepDisplay: DefaultKeepDisplay,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/wakeguard/
//   - Linux:   ~/.config/wakeguard/
//   - Windows: %APPDATA%\wakeguard\
func PlatformConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Application Support", "wakeguard")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			homeDir, _ := os.UserHomeDir()
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "wakeguard")
	case "linux":
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			homeDir, _ := os.UserHomeDir()
			configHome = filepath.Join(homeDir, ".config")
		}
		return filepath.Join(configHome, "wakeguard")
	default:
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".wakeguard")
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(PlatformConfigDir(), "config.toml")
}
