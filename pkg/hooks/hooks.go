package hooks

import (
	"context"
	"fmt"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/registry"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

// Hook may claim a message. Returning true stops further processing.
type Hook interface {
	Handle(ctx context.Context, msg message.Message, kind message.Kind, toks tokens.Sequence) (bool, error)
}

// Func adapts a function to Hook.
type Func func(ctx context.Context, msg message.Message, kind message.Kind, toks tokens.Sequence) (bool, error)

// Handle calls f.
func (f Func) Handle(ctx context.Context, msg message.Message, kind message.Kind, toks tokens.Sequence) (bool, error) {
	return f(ctx, msg, kind, toks)
}

// Named pairs a hook with the name it was registered under.
type Named struct {
	Name string
	Hook Hook
}

// Chain is an ordered, named list of hooks safe for concurrent use.
type Chain struct {
	hooks registry.Registry[Named]
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{hooks: registry.New[Named]()}
}

// Register appends h under name.
func (c *Chain) Register(name string, h Hook) error {
	if h == nil {
		return errors.Newf(errors.ErrInvalidInput, "nil hook %q", name)
	}
	if err := c.hooks.Register(name, Named{Name: name, Hook: h}); err != nil {
		return err
	}
	logger := logging.GetLogger("hooks")
	logger.Debug().Str("hook", name).Msg("Hook registered")
	return nil
}

// Unregister removes the hook registered under name.
func (c *Chain) Unregister(name string) error {
	return c.hooks.Remove(name)
}

// Names lists hook names in evaluation order.
func (c *Chain) Names() []string {
	return c.hooks.List()
}

// Len returns the number of hooks.
func (c *Chain) Len() int {
	return c.hooks.Count()
}

// Dispatch runs the chain and reports whether a hook handled the message.
func (c *Chain) Dispatch(ctx context.Context, msg message.Message, kind message.Kind, toks tokens.Sequence) bool {
	if c == nil {
		return false
	}
	return dispatchAll(ctx, c.hooks.Items(), msg, kind, toks)
}

func dispatchAll(ctx context.Context, chain []Named, msg message.Message, kind message.Kind, toks tokens.Sequence) bool {
	for _, n := range chain {
		if invoke(ctx, n, msg, kind, toks) {
			return true
		}
	}
	return false
}

func invoke(ctx context.Context, n Named, msg message.Message, kind message.Kind, toks tokens.Sequence) (handled bool) {
	logger := logging.GetLogger("hooks")
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf(errors.ErrHookFailed, "hook panicked: %v", r).WithDetail("hook", n.Name)
			logger.Debug().Err(err).Str("hook", n.Name).Msg("Hook failed")
			handled = false
		}
	}()

	ok, err := n.Hook.Handle(ctx, msg, kind, toks.Clone())
	if err != nil {
		logger.Debug().
			Err(errors.Wrap(err, errors.ErrHookFailed, fmt.Sprintf("hook %s", n.Name))).
			Str("hook", n.Name).
			Str("shape", msg.Shape().String()).
			Msg("Hook failed")
		return false
	}
	if ok {
		logger.Trace().
			Str("hook", n.Name).
			Str("shape", msg.Shape().String()).
			Str("kind", kind.String()).
			Msg("Message handled by hook")
	}
	return ok
}
