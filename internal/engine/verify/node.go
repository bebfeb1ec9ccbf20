package verify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the consistency verifier Graft node.
const NodeID graft.ID = "engine.verify"

func init() {
	graft.Register(graft.Node[ports.ConsistencyVerifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConsistencyVerifier, error) {
			return New(), nil
		},
	})
}
