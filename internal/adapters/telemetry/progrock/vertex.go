package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/stamp/internal/core/domain"
)

// stage is one recorded generation stage.
type stage struct {
	rec  *progrock.VertexRecorder
	once sync.Once
}

func (s *stage) Stdout() io.Writer { return s.rec.Stdout() }

func (s *stage) Stderr() io.Writer { return s.rec.Stderr() }

// Log writes one line per message. Warnings and errors go to the stage's stderr.
func (s *stage) Log(level domain.LogLevel, msg string) {
	w := s.rec.Stdout()
	if level >= domain.LogLevelWarn {
		w = s.rec.Stderr()
	}
	_, _ = io.WriteString(w, level.String()+" "+msg+"\n")
}

// Complete finishes the stage. Only the first call is recorded.
func (s *stage) Complete(err error) {
	s.once.Do(func() { s.rec.Done(err) })
}

func (s *stage) Cached() { s.rec.Cached() }
