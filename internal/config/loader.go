// Package config handles configuration loading, validation, and management for wakeguard.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path and applies environment
// overrides. An empty path selects the default location; a missing file at
// the default location is not an error and yields defaults.
//
// Load does not validate: callers overlay CLI flags on the result first and
// then call Validate, so a flag can correct a bad file or environment value.
//
// Configuration is fixed for the process lifetime: the file is read once at
// startup and never watched or rewritten.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			cfg = DefaultConfig()
		} else {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// loadConfigFromFile reads and parses a configuration file. The format is
// selected by extension: .toml, .yaml/.yml, or .json.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	return cfg, nil
}
