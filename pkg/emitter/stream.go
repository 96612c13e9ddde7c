package emitter

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/style"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Stream is a locked destination for emitted blocks.
// The stream never opens or closes the underlying writer.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	name   string
	styler *style.Styler
	mode   style.ColorMode
}

// Option configures a Stream
type Option func(*Stream)

// WithName labels the stream in logs and errors.
func WithName(name string) Option {
	return func(s *Stream) { s.name = name }
}

// WithColor sets the colour mode. Defaults to auto.
func WithColor(mode style.ColorMode) Option {
	return func(s *Stream) { s.mode = mode }
}

// WithStyler replaces the styler derived from the colour mode.
func WithStyler(st *style.Styler) Option {
	return func(s *Stream) { s.styler = st }
}

// NewStream wraps w.
func NewStream(w io.Writer, opts ...Option) *Stream {
	s := &Stream{w: w, name: "stream", mode: style.ColorAuto}
	for _, opt := range opts {
		opt(s)
	}
	if s.styler == nil {
		s.styler = style.NewStyler(w, s.mode)
	}
	return s
}

// Name returns the stream label.
func (s *Stream) Name() string { return s.name }

// Writer returns the wrapped writer.
func (s *Stream) Writer() io.Writer { return s.w }

// Styler returns the styler bound to this stream.
func (s *Stream) Styler() *style.Styler { return s.styler }

// Colored reports whether style tokens produce escape sequences.
func (s *Stream) Colored() bool { return s.styler.Enabled() }

// Flush forwards to the writer's Flush or Sync method, if any.
func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

func (s *Stream) flush() error {
	switch w := s.w.(type) {
	case flusher:
		if err := w.Flush(); err != nil {
			return s.writeErr(err, "flush")
		}
	case *os.File:
		// unbuffered; Sync on a terminal fails with EINVAL
	case syncer:
		if err := w.Sync(); err != nil {
			return s.writeErr(err, "sync")
		}
	}
	return nil
}

func (s *Stream) write(buf *strings.Builder) error {
	if buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(s.w, buf.String())
	buf.Reset()
	if err != nil {
		return s.writeErr(err, "write")
	}
	return nil
}

func (s *Stream) writeErr(err error, op string) error {
	logger := logging.GetLogger("emitter")
	logger.Debug().Err(err).Str("stream", s.name).Str("op", op).Msg("Emit failed")
	return errors.Wrapf(err, errors.ErrWriteFailed, "%s to %s failed", op, s.name).
		WithDetail("stream", s.name)
}

// Emit writes seq as lines, each starting with prefix.
func (s *Stream) Emit(prefix string, seq tokens.Sequence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		buf     strings.Builder
		atStart = true
		active  string
	)

	for _, t := range seq {
		switch t.Type() {
		case tokens.TypeText:
			if atStart {
				buf.WriteString(prefix)
				atStart = false
			}
			text := t.Render()
			if active != "" {
				text = s.styler.Apply(active, text)
			}
			buf.WriteString(text)

		case tokens.TypeNewLine:
			if atStart {
				buf.WriteString(strings.TrimRight(prefix, " \t"))
			}
			buf.WriteByte('\n')
			atStart = true
			active = ""

		case tokens.TypeFlush:
			if err := s.write(&buf); err != nil {
				return err
			}
			if err := s.flush(); err != nil {
				return err
			}

		case tokens.TypeStyle:
			if t.Attr() == tokens.ResetStyle {
				active = ""
			} else {
				active = t.Attr()
			}
		}
	}

	if !atStart && !seq.EndsWithFlush() {
		buf.WriteByte('\n')
	}

	return s.write(&buf)
}

// Emit writes seq to s with prefix.
func Emit(s *Stream, prefix string, seq tokens.Sequence) error {
	return s.Emit(prefix, seq)
}
