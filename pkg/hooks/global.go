package hooks

import "sync"

var (
	globalOnce  sync.Once
	globalChain *Chain
)

// Global returns the process-wide chain. It starts empty.
func Global() *Chain {
	globalOnce.Do(func() {
		globalChain = NewChain()
	})
	return globalChain
}

// Register appends h to the process-wide chain.
func Register(name string, h Hook) error {
	return Global().Register(name, h)
}

// Unregister removes name from the process-wide chain.
func Unregister(name string) error {
	return Global().Unregister(name)
}
