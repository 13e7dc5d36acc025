package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsImageWrites(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "hero.png")

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.WatchFile(path); err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	if err := w.WatchFile(path); err != nil {
		t.Fatalf("second WatchFile should be a no-op: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	writePNG(t, dir, "hero.png")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-w.Events:
			if got != path {
				t.Fatalf("expected only image events, got %q", got)
			}
			return
		case <-deadline:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcherWaitsForWritesToSettle(t *testing.T) {
	data, err := os.ReadFile(writePNG(t, t.TempDir(), "src.png"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	dir := t.TempDir()
	path := writePNG(t, dir, "hero.png")

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()
	if err := w.WatchFile(path); err != nil {
		t.Fatalf("WatchFile: %v", err)
	}

	// An editor saving in two chunks leaves a truncated PNG in between.
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.Write(data[:10]); err != nil {
		t.Fatalf("write head: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := f.Write(data[10:]); err != nil {
		t.Fatalf("write tail: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("%s reported before the writes settled", got)
	default:
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("got event for %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", path)
	}
	if _, err := LoadImage(path); err != nil {
		t.Fatalf("image should be complete when reported: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("expected one event per burst, got another for %q", got)
	case <-time.After(3 * debounce):
	}
}
