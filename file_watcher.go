package glide

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a config file and emits its contents on every change.
//
// The parent directory is watched rather than the file itself so that editors
// which save by writing a temporary file and renaming it over the original
// keep triggering reloads.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a FileWatcher for path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: path}
}

// Path returns the watched file path.
func (w *FileWatcher) Path() string {
	return w.path
}

// Watch emits the current contents of the file, then the new contents after
// each write, create or rename onto the path. The file must exist.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", w.path, err)
	}
	initial, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer fsw.Close()

		select {
		case out <- initial:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				data, err := os.ReadFile(abs)
				if err != nil {
					// Renamed away; the replacement arrives as a create.
					continue
				}
				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				Logger().Warn("config watch error", "path", w.path, "error", err)
			}
		}
	}()

	return out, nil
}
