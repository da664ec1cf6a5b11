package worksheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Verify interface compliance.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher signals changes to a worksheet file. The parent directory is
// watched so that editors which save by renaming a temporary file over the
// original are still seen.
type Watcher struct{}

// NewWatcher creates a file watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch starts watching path until ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("watch target error: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !isChange(event, abs) {
					continue
				}
				logger.Debug("worksheet changed: %s (%s)", event.Name, event.Op)
				select {
				case changes <- struct{}{}:
				default:
					// A signal is already pending.
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// isChange reports whether event is a write or create of target.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
