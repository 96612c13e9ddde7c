package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/msgkit/pkg/config"
	"github.com/arthur-debert/msgkit/pkg/emitter"
	"github.com/arthur-debert/msgkit/pkg/hooks"
	"github.com/arthur-debert/msgkit/pkg/kinds"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/renderer"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

// AllTopics enables every debug topic.
const AllTopics = "*"

// Pipeline turns (kind, message) pairs into output.
type Pipeline struct {
	renderers *renderer.Registry
	hooks     *hooks.Chain
	table     kinds.Table
	streams   map[kinds.StreamID]*emitter.Stream
	silent    bool
	topics    map[string]bool
	wait      func(ctx context.Context, d time.Duration)
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithRenderers sets the renderer registry. Defaults to renderer.Default().
func WithRenderers(r *renderer.Registry) Option {
	return func(p *Pipeline) { p.renderers = r }
}

// WithHooks sets the process-wide chain. Defaults to hooks.Global().
func WithHooks(c *hooks.Chain) Option {
	return func(p *Pipeline) { p.hooks = c }
}

// WithKinds sets the kind property table.
func WithKinds(t kinds.Table) Option {
	return func(p *Pipeline) { p.table = t }
}

// WithStream routes a stream id to s.
func WithStream(id kinds.StreamID, s *emitter.Stream) Option {
	return func(p *Pipeline) { p.streams[id] = s }
}

// WithSilent suppresses informational messages.
func WithSilent(silent bool) Option {
	return func(p *Pipeline) { p.silent = silent }
}

// WithDebugTopics enables debug output for topics; "*" enables all.
func WithDebugTopics(topics ...string) Option {
	return func(p *Pipeline) {
		for _, t := range topics {
			p.topics[t] = true
		}
	}
}

// WithWait replaces the pause performed after kinds with a Wait.
func WithWait(fn func(ctx context.Context, d time.Duration)) Option {
	return func(p *Pipeline) { p.wait = fn }
}

// New builds a pipeline. Without options it uses the default registry,
// the global hook chain, the embedded kind defaults and the process
// stdout/stderr streams.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		renderers: renderer.Default(),
		hooks:     hooks.Global(),
		streams: map[kinds.StreamID]*emitter.Stream{
			kinds.UserOutput: emitter.Stdout(),
			kinds.UserError:  emitter.Stderr(),
		},
		topics: make(map[string]bool),
		wait:   sleep,
	}
	if cfg, err := config.Defaults(); err == nil {
		p.table = cfg.KindTable()
	} else {
		p.table = kinds.NewTable(nil)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromConfig builds a pipeline honouring cfg: kind table, verbosity,
// debug topics and colour mode for the process streams. Later options win.
func FromConfig(cfg *config.Config, opts ...Option) *Pipeline {
	base := []Option{
		WithKinds(cfg.KindTable()),
		WithSilent(cfg.Silent()),
		WithDebugTopics(cfg.Output.DebugTopics...),
		WithStream(kinds.UserOutput, emitter.NewStream(os.Stdout,
			emitter.WithName(string(kinds.UserOutput)), emitter.WithColor(cfg.ColorMode()))),
		WithStream(kinds.UserError, emitter.NewStream(os.Stderr,
			emitter.WithName(string(kinds.UserError)), emitter.WithColor(cfg.ColorMode()))),
	}
	return New(append(base, opts...)...)
}

// Process displays msg as kind. Only destination failures are returned.
func (p *Pipeline) Process(ctx context.Context, kind message.Kind, msg message.Message) error {
	logger := logging.GetLogger("pipeline")
	seq := p.Render(msg)

	if hooks.Dispatch(ctx, p.hooks, msg, kind, seq) {
		return nil
	}

	if !p.Visible(kind) {
		logger.Trace().Str("kind", kind.String()).Str("shape", msg.Shape().String()).Msg("Message suppressed")
		return nil
	}

	props := p.table.Lookup(kind)
	stream := p.stream(props.Stream)
	prefix := props.LinePrefix(stream.Styler(), msg)

	if err := stream.Emit(prefix, seq); err != nil {
		return err
	}

	if props.Wait > 0 {
		p.wait(ctx, props.Wait)
	}
	return nil
}

// Print processes msg with a background context.
func (p *Pipeline) Print(kind message.Kind, msg message.Message) error {
	return p.Process(context.Background(), kind, msg)
}

// Render resolves msg to tokens without hooks or output. It never
// returns an empty sequence.
func (p *Pipeline) Render(msg message.Message) (seq tokens.Sequence) {
	defer func() {
		if r := recover(); r != nil {
			logger := logging.GetLogger("pipeline")
			logger.Debug().
				Interface("panic", r).
				Str("shape", msg.Shape().String()).
				Msg("Resolution panicked, using fallback")
			seq = renderer.Fallback(msg)
		}
	}()
	return p.renderers.Resolve(msg)
}

// MessageToString renders msg to plain text, lines joined with "\n".
func (p *Pipeline) MessageToString(msg message.Message) string {
	return p.Render(msg).String()
}

// Visible reports whether kind passes the verbosity gate.
func (p *Pipeline) Visible(kind message.Kind) bool {
	switch {
	case kind == message.KindSilent:
		return false
	case kind == message.KindInformational:
		return !p.silent
	case kind.IsDebug():
		return p.topics[AllTopics] || p.topics[kind.Topic()]
	}
	return true
}

// Kinds returns the kind property table.
func (p *Pipeline) Kinds() kinds.Table { return p.table }

// Renderers returns the renderer registry.
func (p *Pipeline) Renderers() *renderer.Registry { return p.renderers }

func (p *Pipeline) stream(id kinds.StreamID) *emitter.Stream {
	if s, ok := p.streams[id]; ok {
		return s
	}
	return p.streams[kinds.UserOutput]
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
