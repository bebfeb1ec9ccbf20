// Package progrock records generation stages on a progrock tape.
package progrock

import (
	"context"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/stamp/internal/core/ports"
)

// Recorder implements ports.Telemetry on top of progrock.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	printer *Printer
	seq     atomic.Uint64
}

// New creates a Recorder writing to an in-memory tape and a silent Printer.
// Call SetVerbose to have completed stages printed.
func New() ports.Telemetry {
	printer := NewPrinter(nil)
	r := NewRecorder(fanout{progrock.NewTape(), printer})
	r.printer = printer
	return r
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// SetVerbose prints every completed stage to w. A nil writer silences output.
func (r *Recorder) SetVerbose(w io.Writer) {
	if r.printer != nil {
		r.printer.SetOutput(w)
	}
}

// Record starts recording a new vertex. Repeated names, as in watch mode, get
// distinct vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	vertex := &stage{rec: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// fanout forwards status updates to every writer.
type fanout []progrock.Writer

func (f fanout) WriteStatus(update *progrock.StatusUpdate) error {
	for _, w := range f {
		if err := w.WriteStatus(update); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) Close() error {
	var first error
	for _, w := range f {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
