// Package renderer maps message shapes to the procedures that expand them
// into token sequences.
//
// Several renderers may be registered for one shape. They are tried in
// registration order and the first one that completes wins. A renderer
// declines by returning an error (ErrNotApplicable or any other), by
// returning an empty sequence, or by panicking. When nothing applies,
// Resolve falls back to a single "Unknown message" line; it never fails.
package renderer

import (
	"fmt"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/registry"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

// Func expands a message into tokens. Renderers may read external state
// (lookup tables, catalogs) but must not mutate pipeline state.
type Func func(msg message.Message) (tokens.Sequence, error)

// ErrNotApplicable is the conventional "this renderer does not apply" result.
var ErrNotApplicable = errors.New(errors.ErrNotApplicable, "renderer not applicable")

// UnknownFormat is the template of the fallback line.
const UnknownFormat = "Unknown message: %s"

// Registry holds the renderer alternatives per shape.
type Registry struct {
	shapes registry.Registry[[]Func]
}

// NewRegistry creates an empty renderer registry
func NewRegistry() *Registry {
	return &Registry{shapes: registry.New[[]Func]()}
}

// Register appends fn as the last alternative for shape.
func (r *Registry) Register(shape message.Shape, fn Func) error {
	if shape.Tag == "" {
		return errors.New(errors.ErrInvalidInput, "shape tag cannot be empty")
	}
	if shape.Arity < 0 {
		return errors.Newf(errors.ErrInvalidInput, "negative arity for %s", shape.Tag)
	}
	if fn == nil {
		return errors.Newf(errors.ErrInvalidInput, "nil renderer for %s", shape)
	}

	err := r.shapes.Update(shape.String(), func(current []Func, _ bool) []Func {
		// copy-on-write so Resolve can iterate a snapshot without locking
		next := make([]Func, len(current), len(current)+1)
		copy(next, current)
		return append(next, fn)
	})
	if err != nil {
		return err
	}

	logger := logging.GetLogger("renderer")
	logger.Debug().
		Str("shape", shape.String()).
		Msg("Renderer registered")
	return nil
}

// MustRegister registers fn and panics on error
func (r *Registry) MustRegister(shape message.Shape, fn Func) {
	if err := r.Register(shape, fn); err != nil {
		panic(fmt.Sprintf("failed to register renderer for %s: %v", shape, err))
	}
}

// Alternatives returns how many renderers are registered for shape.
func (r *Registry) Alternatives(shape message.Shape) int {
	fns, err := r.shapes.Get(shape.String())
	if err != nil {
		return 0
	}
	return len(fns)
}

// Shapes lists every shape with at least one renderer, in registration order.
func (r *Registry) Shapes() []string {
	return r.shapes.List()
}

// Resolve returns the tokens of the first applicable renderer, or the
// fallback line.
func (r *Registry) Resolve(msg message.Message) tokens.Sequence {
	if seq, ok := r.TryResolve(msg); ok {
		return seq
	}
	return Fallback(msg)
}

// TryResolve is Resolve without the fallback; ok is false when no
// renderer applied.
func (r *Registry) TryResolve(msg message.Message) (tokens.Sequence, bool) {
	logger := logging.GetLogger("renderer")
	shape := msg.Shape()

	fns, err := r.shapes.Get(shape.String())
	if err != nil {
		logger.Trace().Str("shape", shape.String()).Msg("No renderer registered")
		return nil, false
	}

	for i, fn := range fns {
		seq, err := call(fn, msg)
		if err != nil {
			logger.Trace().
				Err(err).
				Str("shape", shape.String()).
				Int("alternative", i).
				Msg("Renderer declined")
			continue
		}
		if !seq.HasOutput() {
			logger.Trace().
				Str("shape", shape.String()).
				Int("alternative", i).
				Int("tokens", len(seq)).
				Msg("Renderer produced no output")
			continue
		}
		return seq.Clone(), true
	}
	return nil, false
}

// call runs fn, turning a panic into an error.
func call(fn Func, msg message.Message) (seq tokens.Sequence, err error) {
	defer func() {
		if r := recover(); r != nil {
			seq = nil
			err = errors.Newf(errors.ErrRenderFailed, "renderer panicked: %v", r).
				WithDetail("shape", msg.Shape().String())
		}
	}()
	return fn(msg)
}

// Fallback renders the raw term of msg as a single line.
func Fallback(msg message.Message) tokens.Sequence {
	return tokens.Sequence{tokens.Text(UnknownFormat, msg.String())}
}
