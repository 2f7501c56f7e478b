// Package watch re-runs work when a results file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gallery-analytics-service/internal/log"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher watches the directory of a single file so atomic renames and
// sqlite journal files are seen as changes to it.
type Watcher struct {
	fw       *fsnotify.Watcher
	base     string
	debounce time.Duration
	logger   log.Logger
}

func New(path string, debounce time.Duration, logger log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{fw: fw, base: filepath.Base(path), debounce: debounce, logger: logger}, nil
}

// Run calls onChange once per burst of writes until ctx is cancelled.
// onChange runs on the caller's goroutine, never concurrently with itself.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.fw.Close()

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), w.base) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("watch error: %v", err)
		}
	}
}
