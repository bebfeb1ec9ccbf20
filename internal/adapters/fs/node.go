package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// PublisherNodeID is the unique identifier for the artifact publisher Graft node.
	PublisherNodeID graft.ID = "adapter.fs.publisher"
	// ReaderNodeID is the unique identifier for the artifact reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactPublisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactPublisher, error) {
			return NewPublisher(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactReader, error) {
			return NewPublisher(), nil
		},
	})
}
