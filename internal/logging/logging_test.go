package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDisabled(t *testing.T) {
	for _, path := range []string{"", Disabled} {
		logger, err := New(path, true)
		if err != nil {
			t.Fatalf("New(%q): %v", path, err)
		}
		logger.Info("dropped")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "site.log")
	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("badge selected")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "badge selected") {
		t.Fatalf("expected debug entry in log, got %q", string(data))
	}
}
