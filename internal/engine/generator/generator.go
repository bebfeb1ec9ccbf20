// Package generator runs generation passes: resolve, emit both forms, verify, publish.
package generator

import (
	"context"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator runs generation passes.
type Generator struct {
	array     ports.Emitter
	mapped    ports.Emitter
	verifier  ports.ConsistencyVerifier
	publisher ports.ArtifactPublisher
	telemetry ports.Telemetry
}

// Result is the outcome of one pass.
type Result struct {
	State     domain.PassState
	Metadata  *domain.Metadata
	Artifacts []domain.Artifact
}

// New creates a new Generator.
func New(
	array ports.Emitter,
	mapped ports.Emitter,
	verifier ports.ConsistencyVerifier,
	publisher ports.ArtifactPublisher,
	telemetry ports.Telemetry,
) *Generator {
	return &Generator{
		array:     array,
		mapped:    mapped,
		verifier:  verifier,
		publisher: publisher,
		telemetry: telemetry,
	}
}

// Run executes a full pass and publishes both artifacts once they are verified.
// On failure nothing is published.
func (g *Generator) Run(ctx context.Context, manifest *domain.Manifest) (*Result, error) {
	return g.run(ctx, manifest, true)
}

// Render executes a pass up to verification without publishing.
func (g *Generator) Render(ctx context.Context, manifest *domain.Manifest) (*Result, error) {
	return g.run(ctx, manifest, false)
}

func (g *Generator) run(ctx context.Context, manifest *domain.Manifest, publish bool) (*Result, error) {
	label := passLabel(manifest)
	ctx, vertex := g.telemetry.Record(ctx, "generate "+label)

	var pass domain.Pass
	result := &Result{}

	err := g.execute(ctx, &pass, result, manifest, label, publish)
	if err != nil {
		pass.Fail(err)
		result.State = pass.State()
		vertex.Complete(err)
		return result, zerr.With(zerr.Wrap(err, domain.ErrGenerationFailed.Error()), "target", label)
	}

	result.State = pass.State()
	vertex.Log(domain.LogLevelInfo, "pass "+result.State.String())
	vertex.Complete(nil)
	return result, nil
}

func (g *Generator) execute(
	ctx context.Context,
	pass *domain.Pass,
	result *Result,
	manifest *domain.Manifest,
	label string,
	publish bool,
) error {
	var meta *domain.Metadata
	err := g.stage(ctx, pass, domain.PassResolved, "resolve "+label, func() error {
		var err error
		meta, err = domain.Resolve(manifest)
		return err
	})
	if err != nil {
		return err
	}
	result.Metadata = meta

	var array, mapped domain.Artifact
	err = g.stage(ctx, pass, domain.PassArrayEmitted, "emit array "+label, func() error {
		var err error
		array, err = g.array.Emit(meta, manifest.Output.Array)
		return err
	})
	if err != nil {
		return err
	}

	err = g.stage(ctx, pass, domain.PassMapEmitted, "emit map "+label, func() error {
		var err error
		mapped, err = g.mapped.Emit(meta, manifest.Output.Map)
		return err
	})
	if err != nil {
		return err
	}

	err = g.stage(ctx, pass, domain.PassVerified, "verify "+label, func() error {
		if err := g.verifier.Verify(array, mapped); err != nil {
			return err
		}
		return g.verifier.VerifyAgainst(meta, array)
	})
	if err != nil {
		return err
	}
	result.Artifacts = []domain.Artifact{array, mapped}

	if !publish {
		return nil
	}

	return g.stage(ctx, pass, domain.PassPublished, "publish "+label, func() error {
		return g.publisher.Publish(array, mapped)
	})
}

// stage runs fn as its own vertex and advances the pass to next when fn succeeds.
func (g *Generator) stage(ctx context.Context, pass *domain.Pass, next domain.PassState, name string, fn func() error) error {
	_, vertex := g.telemetry.Record(ctx, name)

	err := fn()
	if err == nil {
		err = pass.Advance(next)
	}
	vertex.Complete(err)
	return err
}

func passLabel(m *domain.Manifest) string {
	switch {
	case m == nil:
		return "<none>"
	case m.Target != "":
		return m.Target
	case m.Name != "":
		return m.Name
	default:
		return "<unnamed>"
	}
}
