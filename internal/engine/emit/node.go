package emit

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// ArrayNodeID is the unique identifier for the array form emitter Graft node.
	ArrayNodeID graft.ID = "engine.emit.array"
	// MapNodeID is the unique identifier for the map form emitter Graft node.
	MapNodeID graft.ID = "engine.emit.map"
)

func init() {
	graft.Register(graft.Node[*ArrayEmitter]{
		ID:        ArrayNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*ArrayEmitter, error) {
			return NewArrayEmitter(), nil
		},
	})

	graft.Register(graft.Node[*MapEmitter]{
		ID:        MapNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*MapEmitter, error) {
			return NewMapEmitter(), nil
		},
	})
}
