package progrock

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/stamp/internal/ui/output"
	"go.trai.ch/stamp/internal/ui/style"
)

// Printer is a progrock.Writer that prints one line per completed vertex.
type Printer struct {
	mu   sync.Mutex
	out  *termenv.Output
	done map[string]struct{}
}

// NewPrinter creates a Printer writing to w. A nil writer prints nothing.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{done: make(map[string]struct{})}
	p.SetOutput(w)
	return p
}

// SetOutput changes the destination. A nil writer prints nothing.
func (p *Printer) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w == nil {
		p.out = nil
		return
	}
	p.out = output.New(w)
}

// WriteStatus prints vertices that completed in this update.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, seen := p.done[v.Id]; seen {
			continue
		}
		p.done[v.Id] = struct{}{}

		if p.out == nil {
			continue
		}
		if _, err := p.out.WriteString(p.line(v) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) line(v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return output.Paint(p.out, style.Cross+" "+v.Name+": "+*v.Error, termenv.RGBColor(string(style.Red)))
	case v.Cached:
		return output.Paint(p.out, style.Tilde+" "+v.Name+" (cached)", termenv.RGBColor(string(style.Slate)))
	default:
		return output.Paint(p.out, style.Check+" "+v.Name, termenv.RGBColor(string(style.Green)))
	}
}

// Close implements progrock.Writer.
func (p *Printer) Close() error {
	return nil
}
