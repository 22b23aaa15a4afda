package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchContent(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error)
	go func() {
		done <- watchContent(ctx, dir, 20*time.Millisecond, func() { changes <- struct{}{} })
	}()
	// let the watcher start
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for en.yaml")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchContent() = %v, want nil", err)
	}
}

func TestWatchContent_MissingDir(t *testing.T) {
	err := watchContent(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	if err == nil {
		t.Error("watchContent() on a missing directory succeeded")
	}
}
