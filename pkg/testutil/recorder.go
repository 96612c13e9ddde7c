package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

// Seen is one message observed by a Recorder.
type Seen struct {
	Msg    message.Message
	Kind   message.Kind
	Tokens tokens.Sequence
}

// Recorder is a hook that records every call and reports Handled.
type Recorder struct {
	Handled bool

	mu   sync.Mutex
	seen []Seen
}

// Handle implements hooks.Hook
func (r *Recorder) Handle(_ context.Context, msg message.Message, kind message.Kind, toks tokens.Sequence) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, Seen{Msg: msg, Kind: kind, Tokens: toks})
	return r.Handled, nil
}

// Seen returns a copy of the recorded calls.
func (r *Recorder) Seen() []Seen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Seen(nil), r.seen...)
}

// Count returns the number of recorded calls.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
