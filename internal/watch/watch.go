// Package watch re-runs a build whenever files in a source directory change.
package watch

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thruflo/primespiral/internal/logging"
)

// DefaultDebounce batches the bursts of events a single copy or save produces.
const DefaultDebounce = 250 * time.Millisecond

// BuildFunc is called after a batch of relevant changes.
type BuildFunc func(ctx context.Context) error

// Watcher watches one directory (not recursively) for files matching a glob.
type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	build    BuildFunc
	watcher  *fsnotify.Watcher
	log      *logging.Logger
}

// New starts watching dir. Events are queued from this point on, even before
// Run is called. Call Run to process them, or Close to give up.
func New(dir, pattern string, debounce time.Duration, build BuildFunc) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		pattern:  pattern,
		debounce: debounce,
		build:    build,
		watcher:  fw,
		log:      logging.With("dir", dir),
	}, nil
}

// Close stops watching. Run closes the watcher itself when it returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run processes events until ctx is cancelled. Build errors are logged and do
// not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// Armed only while changes are pending.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)

		case <-timer.C:
			if err := w.build(ctx); err != nil {
				w.log.Error("rebuild failed", "error", err)
				continue
			}
			w.log.Info("rebuilt")
		}
	}
}

// relevant reports whether event can change the item list: a matching file
// appeared, changed, disappeared or was renamed.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ok, _ := path.Match(w.pattern, filepath.Base(event.Name))
	return ok
}
