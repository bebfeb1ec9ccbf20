package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is how long the watcher waits for a burst of saves to settle.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher watches a fixed set of files through their parent directories, so
// editors that save by renaming a temp file are still observed.
type Watcher struct {
	window    time.Duration
	logger    ports.Logger
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]struct{}
	events    chan ports.WatchEvent

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher. Nothing is watched until Start.
func NewWatcher(window time.Duration, log ports.Logger) *Watcher {
	return &Watcher{
		window: window,
		logger: log,
		// One queued batch is enough: handling it regenerates from current file contents.
		events: make(chan ports.WatchEvent, 1),
	}
}

// Start begins watching paths until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}

	w.files = make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", p)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "dir", dir)
		}
	}

	w.fsWatcher = fsWatcher
	w.debouncer = NewDebouncer(w.window, w.emit)
	go w.processEvents(ctx)

	return nil
}

// Stop stops watching and ends the event sequence.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events yields debounced batches of changed files.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if _, watched := w.files[filepath.Clean(event.Name)]; watched {
				w.debouncer.Add(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error(zerr.Wrap(err, domain.ErrWatcherFailed.Error()))
			}
		}
	}
}

// emit queues a batch, dropping it when one is already queued.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- ports.WatchEvent{Paths: paths}:
	default:
	}
}

func (w *Watcher) close() {
	w.debouncer.Stop()
	_ = w.fsWatcher.Close()

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
}
