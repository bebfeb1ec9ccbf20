package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/watcher"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) add(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_CoalescesSorted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/project/versions.json")
		d.Add("/project/stamp.yaml")
		d.Add("/project/versions.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/project/stamp.yaml", "/project/versions.json"}, b.all()[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/project/stamp.yaml")
		time.Sleep(60 * time.Millisecond)
		d.Add("/project/stamp.yaml")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all(), "window restarts on every event")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(time.Second, b.add)

		d.Add("/project/stamp.yaml")
		d.Flush()
		require.Len(t, b.all(), 1)

		// Nothing left for the timer.
		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Len(t, b.all(), 1)

		d.Flush()
		assert.Len(t, b.all(), 1, "empty flush does not call back")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/project/stamp.yaml")
		d.Stop()

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/project/stamp.yaml")

		require.NotPanics(t, func() {
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
			d.Flush()
		})
	})
}
