// Package watcher re-runs an export whenever its list source file changes.
// Events are debounced so an editor's write-then-rename dance triggers a
// single re-export.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
)

// DefaultDebounce groups rapid successive writes into one trigger.
const DefaultDebounce = 300 * time.Millisecond

// Handler is invoked after each debounced change of the watched file.
type Handler func(ctx context.Context) error

// ListWatcher watches a single list file.
type ListWatcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
}

// NewListWatcher creates a watcher over the list file at path.
func NewListWatcher(path string, debounce time.Duration, logger logging.Logger) *ListWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ListWatcher{
		path:     path,
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
	}
}

// Watch blocks until ctx is cancelled, invoking handler after every
// debounced change. Handler errors are logged and watching continues; a
// broken export should not stop the watch loop.
func (w *ListWatcher) Watch(ctx context.Context, handler Handler) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a direct file watch.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return err
	}

	w.logger.Info(ctx, "watching list file", "path", w.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Info(ctx, "list file changed, re-exporting", "path", w.path)
			if err := handler(ctx); err != nil {
				w.logger.Error(ctx, err, "re-export failed", "path", w.path)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}
