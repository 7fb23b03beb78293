// Package watch re-runs a scan when matched content changes on disk.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes directory trees and reports batches of changed paths,
// debounced so editor save storms trigger a single rescan.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a watcher with the given debounce window.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw, debounce: debounce}, nil
}

// AddRecursive watches root and every non-hidden directory below it.
// New subdirectories created later are picked up as their create events
// arrive.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if base := filepath.Base(path); strings.HasPrefix(base, ".") && path != root {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Run blocks, invoking onChange with the accumulated changed paths after
// each quiet debounce window. It returns when ctx is cancelled or the
// underlying watcher fails.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	var pending []string
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			// Watch directories created after startup. AddRecursive is a
			// no-op when the created path is a plain file.
			if event.Op.Has(fsnotify.Create) {
				_ = w.AddRecursive(event.Name)
			}
			pending = append(pending, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return err

		case <-timer.C:
			if len(pending) > 0 {
				onChange(pending)
				pending = nil
			}
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
