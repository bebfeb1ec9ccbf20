package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/watcher"
	"go.trai.ch/stamp/internal/core/ports"
)

func nextEvent(t *testing.T, w *watcher.Watcher) ports.WatchEvent {
	t.Helper()

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			got <- event
			return
		}
	}()

	select {
	case event := <-got:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("no watch event received")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "stamp.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("project: {}\n"), 0o600))

	w := watcher.NewWatcher(20*time.Millisecond, nil)
	require.NoError(t, w.Start(t.Context(), []string{manifest}))
	t.Cleanup(func() { _ = w.Stop() })

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(manifest, []byte("project: {name: demo}\n"), 0o600))

	event := nextEvent(t, w)
	assert.Equal(t, []string{manifest}, event.Paths)
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "stamp.yaml")
	require.NoError(t, os.WriteFile(manifest, nil, 0o600))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	w := watcher.NewWatcher(20*time.Millisecond, nil)
	require.NoError(t, w.Start(ctx, []string{manifest}))

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancel")
	}
	require.NoError(t, w.Stop())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := watcher.NewWatcher(20*time.Millisecond, nil)
	err := w.Start(t.Context(), []string{filepath.Join(t.TempDir(), "missing", "stamp.yaml")})
	require.Error(t, err)
}
