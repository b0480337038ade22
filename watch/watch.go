// Package watch re-runs a callback when watched files change. It backs the
// CLI's --watch mode, which keeps a document updated as its defaults evolve.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports write events on a fixed set of files.
type Watcher struct {
	fsw   *fsnotify.Watcher
	files map[string]struct{}
}

// New creates a watcher over the given files. The containing directories are
// watched so that editors replacing files via rename are still observed.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, files: make(map[string]struct{}, len(paths))}
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run blocks, invoking onChange with the path of each watched file that is
// written, created or renamed. It returns when the watcher is closed.
func (w *Watcher) Run(onChange func(path string)) error {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if _, watched := w.files[event.Name]; !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				onChange(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching files: %w", err)
		}
	}
}

// Close stops the watcher and unblocks Run.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
