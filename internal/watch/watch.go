// Package watch reruns a callback when dispatch files change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// OnChange is called with the path of a changed file.
type OnChange func(ctx context.Context, path string) error

// Watcher watches a fixed set of files.
type Watcher struct {
	files    map[string]bool
	onChange OnChange
	debounce time.Duration
	log      *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before onChange runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// New returns a Watcher for files.
func New(files []string, onChange OnChange, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		onChange: onChange,
		debounce: DefaultDebounce,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}

		w.files[abs] = true
	}

	if len(w.files) == 0 {
		return nil, fmt.Errorf("nothing to watch")
	}

	return w, nil
}

// Run blocks until ctx is done. Errors from onChange are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Directories rather than files, so that editors replacing a file by
	// rename keep being tracked.
	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	d := &debouncer{delay: w.debounce, pending: map[string]*time.Timer{}}
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.log.Warn("watch error", "error", err)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			path, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[path] {
				continue
			}

			d.schedule(path, func() {
				if ctx.Err() != nil {
					return
				}

				w.log.Info("change detected", "file", path)

				if err := w.onChange(ctx, path); err != nil {
					w.log.Error("regenerate failed", "file", path, "error", err)
				}
			})
		}
	}
}

// debouncer runs at most one pending callback per key, restarting the delay
// on every schedule.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

func (d *debouncer) schedule(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.pending[key]; ok && t.Stop() {
		d.wg.Done()
	}

	var t *time.Timer

	d.wg.Add(1)
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.pending[key] == t {
			delete(d.pending, key)
		}
		d.mu.Unlock()

		fn()
	})
	d.pending[key] = t
}

// stop cancels pending callbacks and waits for running ones.
func (d *debouncer) stop() {
	d.mu.Lock()
	for key, t := range d.pending {
		if t.Stop() {
			d.wg.Done()
		}

		delete(d.pending, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
