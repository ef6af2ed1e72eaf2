package watch

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func isFsnotifySupported() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "windows", "freebsd", "netbsd", "openbsd":
		return true
	default:
		return false
	}
}

func TestNew_Success(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()

	w, err := New(tempDir, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if w.root == "" {
		t.Error("New() created watcher with empty root")
	}
	if w.debounce != defaultDebounce {
		t.Errorf("New() debounce = %v, want %v", w.debounce, defaultDebounce)
	}
}

func TestNew_NonExistentPath(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	nonExistent := filepath.Join(t.TempDir(), "does-not-exist")

	w, err := New(nonExistent, nil)
	if err == nil {
		_ = w.Close()
		t.Fatal("New() expected error for non-existent path, got nil")
	}
}

func TestWatcher_Events_OnFileWrite(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "doc.md")
	if err := os.WriteFile(target, []byte("# Title"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	w, err := NewWithDebounce(tempDir, []string{"md"}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	if err := os.WriteFile(target, []byte("# Title\n\nBody"), 0o644); err != nil {
		t.Fatalf("failed to modify file: %v", err)
	}

	select {
	case path := <-w.Events():
		if path != target {
			t.Errorf("got event for %q, want %q", path, target)
		}
	case err := <-w.Errors():
		t.Fatalf("received error instead of event: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file write event")
	}
}

func TestWatcher_IgnoresNonMatchingExtension(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()

	w, err := NewWithDebounce(tempDir, []string{"md"}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	other := filepath.Join(tempDir, "image.png")
	if err := os.WriteFile(other, []byte("binary"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	select {
	case path := <-w.Events():
		t.Errorf("received unexpected event for %q", path)
	case <-time.After(200 * time.Millisecond):
		// expected
	}
}

func TestWatcher_Debouncing(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "doc.md")
	if err := os.WriteFile(target, []byte("v0"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	w, err := NewWithDebounce(tempDir, nil, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte("v"+string(rune('1'+i))), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	count := 0
	timer := time.NewTimer(500 * time.Millisecond)
	defer timer.Stop()
loop:
	for {
		select {
		case <-w.Events():
			count++
		case <-timer.C:
			break loop
		}
	}

	if count == 0 {
		t.Error("expected at least one event after rapid writes")
	}
	if count >= 5 {
		t.Errorf("debouncing failed: received %d events for 5 rapid writes", count)
	}
}

func TestWatcher_Close_Idempotent(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()

	w, err := New(tempDir, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := w.Close(); err != nil {
			t.Errorf("Close() call %d error = %v, want nil", i+1, err)
		}
	}
}

func TestWatcher_NewSubdirPickedUp(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	tempDir := t.TempDir()

	w, err := NewWithDebounce(tempDir, []string{"md"}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	subDir := filepath.Join(tempDir, "sub")
	if err := os.Mkdir(subDir, 0o755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	nested := filepath.Join(subDir, "nested.md")
	if err := os.WriteFile(nested, []byte("# Nested"), 0o644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	select {
	case path := <-w.Events():
		if path != nested {
			t.Errorf("got event for %q, want %q", path, nested)
		}
	case err := <-w.Errors():
		t.Fatalf("received error instead of event: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for nested file event")
	}
}
