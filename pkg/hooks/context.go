package hooks

import (
	"context"

	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

type scopeKey struct{}

// scope is an immutable linked list; newest hook at the head.
type scope struct {
	parent *scope
	hook   Named
}

// WithHook returns a context whose scoped chain ends with h.
func WithHook(ctx context.Context, name string, h Hook) context.Context {
	if h == nil {
		return ctx
	}
	parent, _ := ctx.Value(scopeKey{}).(*scope)
	return context.WithValue(ctx, scopeKey{}, &scope{
		parent: parent,
		hook:   Named{Name: name, Hook: h},
	})
}

// Scoped returns the context chain in registration order.
func Scoped(ctx context.Context) []Named {
	var out []Named
	for s, _ := ctx.Value(scopeKey{}).(*scope); s != nil; s = s.parent {
		out = append(out, s.hook)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Dispatch consults the context chain of ctx, then global.
func Dispatch(ctx context.Context, global *Chain, msg message.Message, kind message.Kind, toks tokens.Sequence) bool {
	if dispatchAll(ctx, Scoped(ctx), msg, kind, toks) {
		return true
	}
	return global.Dispatch(ctx, msg, kind, toks)
}
