package pipeline

import (
	"context"
	"sync"

	"github.com/arthur-debert/msgkit/pkg/catalog"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/messages"
	"github.com/arthur-debert/msgkit/pkg/renderer"
)

var (
	defaultMu       sync.RWMutex
	defaultPipeline *Pipeline
	builtinsOnce    sync.Once
)

// Default returns the process-wide pipeline, bound to the default
// renderer registry (with the built-in messages) and the global hooks.
func Default() *Pipeline {
	defaultMu.RLock()
	p := defaultPipeline
	defaultMu.RUnlock()
	if p != nil {
		return p
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPipeline == nil {
		InstallBuiltins(catalog.Empty)
		defaultPipeline = New()
	}
	return defaultPipeline
}

// SetDefault replaces the process-wide pipeline.
func SetDefault(p *Pipeline) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPipeline = p
}

// InstallBuiltins registers the built-in messages on the default
// registry. Only the first call has an effect.
func InstallBuiltins(cat catalog.Catalog) {
	builtinsOnce.Do(func() {
		if err := messages.Install(renderer.Default(), cat); err != nil {
			logger := logging.GetLogger("pipeline")
			logger.Warn().Err(err).Msg("Failed to install built-in messages")
		}
	})
}

// Process displays msg through the default pipeline.
func Process(ctx context.Context, kind message.Kind, msg message.Message) error {
	return Default().Process(ctx, kind, msg)
}

// Print displays msg through the default pipeline.
func Print(kind message.Kind, msg message.Message) error {
	return Default().Print(kind, msg)
}

// MessageToString renders msg through the default pipeline.
func MessageToString(msg message.Message) string {
	return Default().MessageToString(msg)
}
