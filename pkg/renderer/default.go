package renderer

import (
	"sync"

	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide renderer registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds fn to the process-wide registry.
func Register(shape message.Shape, fn Func) error {
	return Default().Register(shape, fn)
}

// Resolve resolves msg against the process-wide registry.
func Resolve(msg message.Message) tokens.Sequence {
	return Default().Resolve(msg)
}
