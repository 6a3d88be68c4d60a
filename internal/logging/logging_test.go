package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("default level = %v, want info", cfg.Level)
	}
	if cfg.Format != FormatText {
		t.Errorf("default format = %v, want text", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("default output = %q, want stderr", cfg.Output)
	}
	if cfg.Component != "wakeguard" {
		t.Errorf("default component = %q, want wakeguard", cfg.Component)
	}
	if cfg.FilePath == "" {
		t.Error("default file path should not be empty")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(empty) = %v, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml) expected error")
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wakeguard.log")

	log, err := New(&Config{
		Level:     LevelInfo,
		Format:    FormatText,
		Output:    "file",
		FilePath:  path,
		Component: "test",
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("keep-awake active", "interval", 60)
	log.Debug("should be filtered")
	if err := log.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "keep-awake active") {
		t.Errorf("log file missing info message: %q", out)
	}
	if !strings.Contains(out, "component=test") {
		t.Errorf("log file missing component attribute: %q", out)
	}
	if strings.Contains(out, "should be filtered") {
		t.Errorf("debug message leaked past info level: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wakeguard.log")

	log, err := New(&Config{
		Output:   "file",
		FilePath: path,
		Level:    LevelInfo,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.WithComponent("keeper").Info("cycle complete")
	log.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "component=keeper") {
		t.Errorf("log output missing scoped component: %q", string(data))
	}
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default returned nil")
	}
}
