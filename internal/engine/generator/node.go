package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stamp/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/emit"
	"go.trai.ch/stamp/internal/engine/verify"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			emit.ArrayNodeID,
			emit.MapNodeID,
			verify.NodeID,
			fs.PublisherNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			array, err := graft.Dep[*emit.ArrayEmitter](ctx)
			if err != nil {
				return nil, err
			}

			mapped, err := graft.Dep[*emit.MapEmitter](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.ConsistencyVerifier](ctx)
			if err != nil {
				return nil, err
			}

			publisher, err := graft.Dep[ports.ArtifactPublisher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(array, mapped, verifier, publisher, telemetry), nil
		},
	})
}
