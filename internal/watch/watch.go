// Package watch re-runs a pass whenever matching files under the input tree change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/srcpack/pkg/log"
)

// DefaultDebounce is the quiet period after the last change before a pass starts.
const DefaultDebounce = 300 * time.Millisecond

// Matcher decides which paths are relevant. *fs.Discoverer satisfies it.
type Matcher interface {
	// Matches reports whether a file name is collected.
	Matches(name string) bool

	// Skips reports whether a directory is excluded from the walk.
	Skips(path string) bool

	// IsOutput reports whether a file is one the pass itself writes.
	IsOutput(path string) bool
}

// PassFunc executes one full pass.
type PassFunc func(ctx context.Context) error

// Watcher monitors every directory of a tree with fsnotify.
// fsnotify is not recursive, so directories created later are added as they appear.
type Watcher struct {
	root     string
	matcher  Matcher
	pass     PassFunc
	debounce time.Duration
	logger   log.Logger

	runMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending sync.WaitGroup

	ready chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch events and pass failures.
func WithLogger(l log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Watcher for root.
func New(root string, matcher Matcher, pass PassFunc, opts ...Option) *Watcher {
	w := &Watcher{
		root:     root,
		matcher:  matcher,
		pass:     pass,
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready is closed once the initial directories are being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run blocks until ctx is canceled, triggering a pass after relevant changes.
// It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.root); err != nil {
		return err
	}
	close(w.ready)
	w.logger.Info("watching for changes", log.String("root", w.root))

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.matcher.Skips(event.Name) {
				return
			}
			if err := w.addTree(watcher, event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", log.String("path", event.Name), log.Err(err))
			}
			// Files may have landed before the watch was added.
			w.trigger(ctx)
			return
		}
	}

	if !w.matcher.Matches(filepath.Base(event.Name)) || w.matcher.IsOutput(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	w.logger.Debug("change detected", log.String("path", event.Name), log.String("op", event.Op.String()))
	w.trigger(ctx)
}

// addTree watches dir and every non-skipped directory below it.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			w.logger.Warn("skip unreadable path", log.String("path", path), log.Err(err))
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != w.root && w.matcher.Skips(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			if path == dir {
				return err
			}
			w.logger.Warn("cannot watch directory", log.String("path", path), log.Err(err))
		}
		return nil
	})
}

// trigger schedules a pass after the debounce period, restarting the period
// if one is already scheduled.
func (w *Watcher) trigger(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.pending.Done()
	}
	w.pending.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.pending.Done()
		w.runPass(ctx)
	})
}

func (w *Watcher) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	w.runMu.Lock()
	defer w.runMu.Unlock()

	start := time.Now()
	if err := w.pass(ctx); err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Error("pass failed", log.Err(err))
		return
	}
	w.logger.Debug("pass finished", log.Duration("elapsed", time.Since(start)))
}

// stop cancels a scheduled pass and waits for a running one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.pending.Done()
	}
	w.mu.Unlock()
	w.pending.Wait()
}
