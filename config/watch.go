package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store when its file is edited by something else.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration

	changes chan Config
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// Watch starts watching the store's directory. Editors commonly replace the
// file by rename, so the directory is watched rather than the file.
// The watcher stops when ctx is done or Close is called.
func Watch(ctx context.Context, store *Store, logger *zap.Logger, opts ...WatchOption) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	dir := filepath.Dir(store.Path())
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		store:    store,
		watcher:  fw,
		logger:   logger,
		debounce: DefaultDebounce,
		changes:  make(chan Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run(ctx)
	logger.Debug("watching config", zap.String("dir", dir))
	return w, nil
}

// Changes delivers the configuration after each external edit. Only the
// latest unread configuration is kept.
func (w *Watcher) Changes() <-chan Config {
	return w.changes
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	target := filepath.Clean(w.store.Path())
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	changed, err := w.store.Reload()
	if err != nil {
		w.logger.Warn("config reload failed", zap.String("path", w.store.Path()), zap.Error(err))
		return
	}
	if !changed {
		return
	}
	cfg := w.store.Config()
	w.logger.Info("config reloaded", zap.String("path", w.store.Path()))

	// Replace any unread value with the latest one
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
}
