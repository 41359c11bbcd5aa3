package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Hero.TypingSpeedMs != nil || cfg.Nav.Breakpoint != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[hero]
typing-speed-ms = 45
badge = "performance"

[testimonials]
page-size = 2

[nav]
breakpoint = 120

[content]
watch = true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Hero.TypingSpeedMs == nil || *cfg.Hero.TypingSpeedMs != 45 {
		t.Fatalf("unexpected typing speed: %v", cfg.Hero.TypingSpeedMs)
	}
	if cfg.Hero.Badge == nil || *cfg.Hero.Badge != "performance" {
		t.Fatalf("unexpected badge: %v", cfg.Hero.Badge)
	}
	if cfg.Testimonials.PageSize == nil || *cfg.Testimonials.PageSize != 2 {
		t.Fatalf("unexpected page size: %v", cfg.Testimonials.PageSize)
	}
	if cfg.Nav.Breakpoint == nil || *cfg.Nav.Breakpoint != 120 {
		t.Fatalf("unexpected breakpoint: %v", cfg.Nav.Breakpoint)
	}
	if cfg.Content.Watch == nil || !*cfg.Content.Watch {
		t.Fatalf("expected watch enabled")
	}
	if cfg.Hero.FileName != nil || cfg.Log.File != nil {
		t.Fatalf("expected unset keys to stay nil")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[hero]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "slynxsite", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "slynxsite", "slynxsite.log") {
		t.Fatalf("unexpected log path %s", got)
	}
}
