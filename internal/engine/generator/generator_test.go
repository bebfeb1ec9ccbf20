package generator_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.trai.ch/stamp/internal/engine/emit"
	"go.trai.ch/stamp/internal/engine/generator"
	"go.trai.ch/stamp/internal/engine/verify"
	"go.uber.org/mock/gomock"
)

func demoManifest() *domain.Manifest {
	return &domain.Manifest{
		Name:                "demo",
		Version:             "1.2.3",
		Description:         "x",
		ProjectDependencies: []domain.Dependency{{Name: "fmt", Version: "10.1.0"}},
		Target:              "demo",
		Output:              domain.DefaultOutputConfig(),
	}
}

func newTelemetry(ctrl *gomock.Controller) *mocks.MockTelemetry {
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	return telemetry
}

func TestGenerator_Run_Publishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)

	var published []domain.Artifact
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(artifacts ...domain.Artifact) error {
			published = artifacts
			return nil
		})

	g := generator.New(emit.NewArrayEmitter(), emit.NewMapEmitter(), verify.New(), publisher, newTelemetry(ctrl))

	result, err := g.Run(context.Background(), demoManifest())
	require.NoError(t, err)

	assert.Equal(t, domain.PassPublished, result.State)
	require.Len(t, published, 2)
	assert.Equal(t, domain.FormArray, published[0].Form)
	assert.Equal(t, domain.FormMap, published[1].Form)
	assert.Equal(t, result.Artifacts, published)
	assert.Equal(t, "demo", result.Metadata.Identity.Name)
}

func TestGenerator_Render_DoesNotPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)

	g := generator.New(emit.NewArrayEmitter(), emit.NewMapEmitter(), verify.New(), publisher, newTelemetry(ctrl))

	result, err := g.Render(context.Background(), demoManifest())
	require.NoError(t, err)
	assert.Equal(t, domain.PassVerified, result.State)
	assert.Len(t, result.Artifacts, 2)
}

func TestGenerator_Run_FailsFastOnMissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)
	array := mocks.NewMockEmitter(ctrl)
	mapped := mocks.NewMockEmitter(ctrl)

	// No emitter or publisher calls are expected.
	g := generator.New(array, mapped, verify.New(), publisher, newTelemetry(ctrl))

	m := demoManifest()
	m.Version = ""

	result, err := g.Run(context.Background(), m)
	require.ErrorIs(t, err, domain.ErrMissingMetadata)
	assert.Equal(t, domain.PassFailed, result.State)
	assert.Nil(t, result.Metadata)
	assert.Empty(t, result.Artifacts)
}

func TestGenerator_Run_EmissionFailureAbortsBothForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)

	g := generator.New(emit.NewArrayEmitter(), emit.NewMapEmitter(), verify.New(), publisher, newTelemetry(ctrl))

	m := demoManifest()
	m.TargetDependencies = []domain.Dependency{{Name: "bad\xff", Version: "1"}}

	result, err := g.Run(context.Background(), m)
	require.ErrorIs(t, err, domain.ErrEmissionFailure)
	assert.Equal(t, domain.PassFailed, result.State)
}

func TestGenerator_Run_MismatchIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)

	// The map emitter renders stale metadata so the forms disagree.
	stale := mocks.NewMockEmitter(ctrl)
	stale.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(meta *domain.Metadata, out domain.OutputSpec) (domain.Artifact, error) {
			changed := *meta
			changed.Identity.Version = "0.0.0"
			return emit.NewMapEmitter().Emit(&changed, out)
		})

	g := generator.New(emit.NewArrayEmitter(), stale, verify.New(), publisher, newTelemetry(ctrl))

	result, err := g.Run(context.Background(), demoManifest())
	require.ErrorIs(t, err, domain.ErrRepresentationMismatch)
	assert.Equal(t, domain.PassFailed, result.State)
}

func TestGenerator_Run_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockArtifactPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	g := generator.New(emit.NewArrayEmitter(), emit.NewMapEmitter(), verify.New(), publisher, newTelemetry(ctrl))

	result, err := g.Run(context.Background(), demoManifest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, domain.PassFailed, result.State)
}

func TestGenerator_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := generator.New(emit.NewArrayEmitter(), emit.NewMapEmitter(), verify.New(),
		mocks.NewMockArtifactPublisher(ctrl), newTelemetry(ctrl))

	first, err := g.Render(context.Background(), demoManifest())
	require.NoError(t, err)
	second, err := g.Render(context.Background(), demoManifest())
	require.NoError(t, err)

	assert.Equal(t, first.Artifacts, second.Artifacts)
}
