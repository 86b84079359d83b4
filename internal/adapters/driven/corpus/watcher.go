package corpus

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsearch/internal/logger"
)

// Debounce window before a change triggers a reload. Editors often emit
// bursts of write events for a single save.
const debounceInterval = 500 * time.Millisecond

// Watcher observes a corpus source and invokes a callback when the
// source material changes. Events are debounced so a burst of writes
// results in a single reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func()
}

// NewWatcher creates a watcher for the given corpus path. For a
// directory source, subdirectories are watched recursively.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     path,
		onChange: onChange,
	}
	if err := w.addRecursive(path); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run processes filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		w.fsw.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Corpus change: %s %s", event.Op, event.Name)

			// New directories must be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				if err := w.addRecursive(event.Name); err != nil {
					logger.Debug("Watch %s: %v", event.Name, err)
				}
			}

			if timer == nil {
				timer = time.AfterFunc(debounceInterval, w.onChange)
			} else {
				timer.Reset(debounceInterval)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Corpus watcher error: %v", err)
		}
	}
}

// relevant reports whether an event should trigger a reload. Chmod-only
// events and hidden files are ignored.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	return !strings.HasPrefix(base, ".")
}

// addRecursive adds path to the watch set and, if it is a directory,
// walks it to watch all non-hidden subdirectories too.
func (w *Watcher) addRecursive(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.fsw.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		return w.fsw.Add(p)
	})
}
