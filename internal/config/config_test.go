package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, DefaultIntervalSec, cfg.Keeper.IntervalSec)
	assert.False(t, cfg.Keeper.MouseNudge)
	assert.True(t, cfg.Keeper.KeepDisplay)
	require.NoError(t, cfg.Validate())
}

func TestKeeperInterval(t *testing.T) {
	k := KeeperConfig{IntervalSec: 30}
	assert.Equal(t, 30*time.Second, k.Interval())
}

func TestValidateRejectsBadInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keeper.IntervalSec = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keeper.interval_sec")
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Logging.Output = "syslog"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "logging.output")
}

func TestValidateRejectsBadVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = Version + 1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WAKEGUARD_INTERVAL_SEC", "15")
	t.Setenv("WAKEGUARD_MOUSE_NUDGE", "true")
	t.Setenv("WAKEGUARD_KEEP_DISPLAY", "false")
	t.Setenv("WAKEGUARD_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 15, cfg.Keeper.IntervalSec)
	assert.True(t, cfg.Keeper.MouseNudge)
	assert.False(t, cfg.Keeper.KeepDisplay)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
version = 1

[keeper]
interval_sec = 5
mouse_nudge = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Keeper.IntervalSec)
	assert.True(t, cfg.Keeper.MouseNudge)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.Keeper.KeepDisplay)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
version: 1
keeper:
  interval_sec: 10
  keep_display: false
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Keeper.IntervalSec)
	assert.False(t, cfg.Keeper.KeepDisplay)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "version": 1,
  "keeper": {"interval_sec": 2, "mouse_nudge": true, "keep_display": true}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Keeper.IntervalSec)
	assert.True(t, cfg.Keeper.MouseNudge)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", "interval_sec = 5")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefersValidationToCaller(t *testing.T) {
	// A bad file value must survive Load so a CLI flag can still correct it
	// before the caller validates.
	path := writeConfig(t, "config.toml", `
[keeper]
interval_sec = -1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Keeper.IntervalSec)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keeper.interval_sec")
}

func TestLoadDefersEnvValidationToCaller(t *testing.T) {
	t.Setenv("WAKEGUARD_INTERVAL_SEC", "0")
	path := writeConfig(t, "config.toml", `
[keeper]
interval_sec = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Keeper.IntervalSec)

	// The CLI overlay runs between Load and Validate; a valid flag value
	// makes the config pass.
	cfg.Keeper.IntervalSec = 30
	require.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}
