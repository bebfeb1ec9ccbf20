package progrock_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	stampprogrock "go.trai.ch/stamp/internal/adapters/telemetry/progrock"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestRecorder_RecordCarriesVertex(t *testing.T) {
	recorder := stampprogrock.New()

	ctx, vertex := recorder.Record(t.Context(), "generate demo")
	require.NotNil(t, vertex)

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	_, err := vertex.Stdout().Write([]byte("resolved\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelWarn, "duplicate dependency")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_Verbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	recorder := stampprogrock.New().(*stampprogrock.Recorder)
	buf := &bytes.Buffer{}
	recorder.SetVerbose(buf)

	_, first := recorder.Record(t.Context(), "emit array demo")
	first.Complete(nil)

	_, cached := recorder.Record(t.Context(), "generate demo")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(t.Context(), "verify demo")
	failed.Complete(errors.New("ProjectVersion differs"))

	require.NoError(t, recorder.Close())
	assert.Equal(t,
		"✓ emit array demo\n~ generate demo (cached)\n✗ verify demo: ProjectVersion differs\n",
		buf.String())
}

func TestPrinter_WriteStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	printer := stampprogrock.NewPrinter(buf)
	now := timestamppb.New(time.Now())
	msg := "boom"

	require.NoError(t, printer.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "resolve demo"},
			{Id: "2", Name: "publish demo", Completed: now},
			{Id: "3", Name: "verify demo", Completed: now, Error: &msg},
		},
	}))
	// Repeated completions print once.
	require.NoError(t, printer.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "2", Name: "publish demo", Completed: now}},
	}))

	assert.Equal(t, "✓ publish demo\n✗ verify demo: boom\n", buf.String())
}

func TestPrinter_Silent(t *testing.T) {
	printer := stampprogrock.NewPrinter(nil)
	require.NoError(t, printer.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "x", Completed: timestamppb.Now()}},
	}))
	require.NoError(t, printer.Close())
}
