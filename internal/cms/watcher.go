package cms

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher invalidates cached posts when files in the content directory change.
// Rapid writes to the same file are coalesced.
type Watcher struct {
	client   *Client
	logger   *zap.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatcherOption customises a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long a slug must stay quiet before it is invalidated.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher prepares a watcher for client's content directory.
func NewWatcher(client *Client, logger *zap.Logger, opts ...WatcherOption) (*Watcher, error) {
	if client == nil {
		return nil, fmt.Errorf("cms: watcher requires a client")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cms: create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		client:   client,
		logger:   logger,
		debounce: defaultDebounce,
		fsw:      fsw,
		pending:  map[string]time.Time{},
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. The content directory is created when missing so the
// generator can populate it later.
// A failed Start leaves the watcher stopped; Stop still releases it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := w.client.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cms: create content dir: %w", err)
	}
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("cms: watch %s: %w", dir, err)
	}
	w.logger.Info("watching content directory", zap.String("dir", dir))

	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.fsw.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("closing content watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 2
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher error", zap.Error(err))
		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	slug, ok := slugFromFile(event.Name)
	if !ok {
		return
	}
	w.mu.Lock()
	w.pending[slug] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush(now time.Time) {
	var ready []string
	w.mu.Lock()
	for slug, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, slug)
			delete(w.pending, slug)
		}
	}
	w.mu.Unlock()

	for _, slug := range ready {
		w.client.Invalidate(slug)
		w.logger.Debug("post invalidated", zap.String("slug", slug))
	}
}
