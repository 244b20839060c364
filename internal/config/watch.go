package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file from disk whenever it changes and
// invokes onReload with the freshly validated document. Reloads are
// debounced so a burst of editor writes collapses into a single parse.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	onReload func(*Config)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewWatcher constructs a Watcher for path. debounce <= 0 defaults to
// 250ms.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger, onReload func(*Config)) *Watcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, debounce: debounce, logger: logger, onReload: onReload}
}

// Start begins watching the config file's directory. It is a no-op if
// already started.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.watcher != nil {
		w.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		w.mu.Unlock()
		return err
	}
	w.watcher = watcher
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(watchCtx)
	return nil
}

// Close stops watching and releases the underlying inotify handle.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	watcher := w.watcher
	w.watcher = nil
	w.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Close()
	}
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	w.mu.Lock()
	watcher := w.watcher
	w.mu.Unlock()
	if watcher == nil {
		return
	}

	var mu sync.Mutex
	var timer *time.Timer
	target := filepath.Clean(w.path)
	scheduleReload := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "error", err)
				return
			}
			w.onReload(cfg)
		})
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}
