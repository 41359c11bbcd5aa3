package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("site: Before\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	msgs := make(chan tea.Msg, 8)
	w, err := NewWatcher(path, func(msg tea.Msg) { msgs <- msg }, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.debounce = 50 * time.Millisecond
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(path, []byte("site: After\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case msg := <-msgs:
		reloaded, ok := msg.(ReloadedMsg)
		if !ok {
			t.Fatalf("expected ReloadedMsg, got %T", msg)
		}
		if reloaded.Content.SiteName != "After" {
			t.Fatalf("expected reloaded site name, got %q", reloaded.Content.SiteName)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("site: Slynx\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	msgs := make(chan tea.Msg, 8)
	w, err := NewWatcher(path, func(msg tea.Msg) { msgs <- msg }, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.debounce = 50 * time.Millisecond
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message %T", msg)
	case <-time.After(200 * time.Millisecond):
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestNewWatcherRejectsEmptyPath(t *testing.T) {
	if _, err := NewWatcher("", func(tea.Msg) {}, nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
