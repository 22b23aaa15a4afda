package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchContent calls onChange each time the YAML content files of dir change,
// once per burst of changes: editors often write a file in several steps. It
// blocks until ctx is done.
func watchContent(ctx context.Context, dir string, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("could not watch %q: %w", dir, err)
	}

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".yaml" || event.Has(fsnotify.Chmod) {
				continue
			}
			log.Printf("%s %s", event.Op, event.Name)
			pending = true

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)

		case <-ticker.C:
			if pending {
				pending = false
				onChange()
			}
		}
	}
}
