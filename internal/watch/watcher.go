// Package watch re-runs a project check whenever its descriptor or the
// files it references change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pydist/cli/internal/output"
)

// Config configures the project watcher.
type Config struct {
	// Root is the project directory to watch.
	Root string

	// DebounceDelay is how long to wait for more changes before re-running.
	DebounceDelay time.Duration

	// Run is invoked once at start and again after each debounced batch of
	// changes. The returned error is logged, not fatal; watching continues.
	Run func(ctx context.Context) error
}

// Watcher watches a project tree and re-runs a check on changes.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op
}

// interesting reports whether a changed path should trigger a re-run.
// Editor swap and backup files are ignored.
func interesting(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	switch {
	case base == "pyproject.toml",
		strings.HasSuffix(base, ".txt"),
		strings.HasSuffix(base, ".md"),
		strings.HasSuffix(base, ".rst"),
		strings.HasSuffix(base, ".py"):
		return true
	}
	return false
}

// New creates a watcher for the given project root.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = 250 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		pending: make(map[string]fsnotify.Op),
	}, nil
}

// Start runs the initial check, then blocks re-running it on changes until
// the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}

	output.Debug("watching project", "root", w.config.Root, "debounce", w.config.DebounceDelay)

	if err := w.config.Run(ctx); err != nil {
		output.Error("check failed", "error", err)
	}

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			output.Error("watch error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// addWatchesRecursive adds watches to all directories under root.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if path != root && (strings.HasPrefix(base, ".") || base == "__pycache__") {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			output.Warn("failed to watch directory", "path", path, "error", err)
		}

		return nil
	})
}

// handleFSEvent records a single fsnotify event for the next flush.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !interesting(path) {
		// New directories still need a watch.
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				_ = w.addWatchesRecursive(path)
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()
}

// flushPending re-runs the check when changes accumulated since the last tick.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	output.Debug("changes detected", "files", len(changed))

	if err := w.config.Run(ctx); err != nil {
		output.Error("check failed", "error", err)
	}
}
