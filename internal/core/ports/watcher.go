package ports

import (
	"context"
	"iter"
)

// WatchEvent is a debounced batch of changed files.
type WatchEvent struct {
	Paths []string
}

// Watcher reports changes to a fixed set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching paths until ctx is canceled or Stop is called.
	Start(ctx context.Context, paths []string) error
	// Events yields batches of changes. The sequence ends when watching stops.
	Events() iter.Seq[WatchEvent]
	// Stop releases all resources.
	Stop() error
}
