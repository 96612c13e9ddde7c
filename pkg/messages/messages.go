package messages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/msgkit/pkg/catalog"
	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/renderer"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

// Tags of the built-in messages defined here.
const (
	TagWelcome    = "welcome"
	TagNoSuchPart = "no_such_part"
)

// MaxFormatArgs is the largest argument count format/N is registered for.
const MaxFormatArgs = 8

// Welcome builds the banner message.
func Welcome(app string, major, minor int) message.Message {
	return message.New(TagWelcome, app, major, minor)
}

// NoSuchPart reports a part that is not in use.
func NoSuchPart(part int) message.Message {
	return message.New(TagNoSuchPart, part)
}

// Install registers every built-in renderer on reg. A nil cat disables
// part enrichment.
func Install(reg *renderer.Registry, cat catalog.Catalog) error {
	if cat == nil {
		cat = catalog.Empty
	}

	for n := 1; n <= MaxFormatArgs+1; n++ {
		if err := reg.Register(message.Shape{Tag: message.TagFormat, Arity: n}, renderFormat); err != nil {
			return err
		}
	}

	steps := []struct {
		shape message.Shape
		fn    renderer.Func
	}{
		{message.Shape{Tag: message.TagGoError, Arity: 1}, renderGoError},
		{message.Shape{Tag: TagWelcome, Arity: 3}, renderWelcome},
		{message.Shape{Tag: TagNoSuchPart, Arity: 1}, partUsedBy(cat)},
		{message.Shape{Tag: TagNoSuchPart, Arity: 1}, renderNoSuchPart},
	}
	for _, s := range steps {
		if err := reg.Register(s.shape, s.fn); err != nil {
			return err
		}
	}
	return nil
}

// lines appends text split on "\n" as Text/NewLine tokens. Argument-less
// Text tokens are literal, so "%" needs no escaping.
func lines(text string) func(*tokens.Builder) {
	return func(b *tokens.Builder) {
		parts := strings.Split(text, "\n")
		for i, p := range parts {
			if i > 0 {
				b.NewLine()
			}
			if p != "" {
				b.Text(p)
			}
		}
	}
}

func renderFormat(msg message.Message) (tokens.Sequence, error) {
	fields := msg.Fields()
	format, ok := fields[0].(string)
	if !ok {
		return nil, renderer.ErrNotApplicable
	}
	text := format
	if len(fields) > 1 {
		text = fmt.Sprintf(format, fields[1:]...)
	}
	if text == "" {
		return tokens.New().NewLine().Build(), nil
	}
	return tokens.New().Include(lines(text)).Build(), nil
}

// SeeAlso is the tail pointing at a help topic.
func SeeAlso(topic string) func(*tokens.Builder) {
	return func(b *tokens.Builder) {
		b.NewLine().Styled("muted", "See 'msgkit topics %s' for details.", topic)
	}
}

// topicFor maps error codes to the help topic that explains them.
var topicFor = map[errors.ErrorCode]string{
	errors.ErrConfigLoad:    "configuration",
	errors.ErrConfigParse:   "configuration",
	errors.ErrConfigInvalid: "configuration",
	errors.ErrCatalogLoad:   "catalog",
}

func renderGoError(msg message.Message) (tokens.Sequence, error) {
	f, _ := msg.Field(0)
	err, ok := f.(error)
	if !ok || err == nil {
		return nil, renderer.ErrNotApplicable
	}

	me, coded := errors.As(err)
	if !coded {
		return tokens.New().Include(lines(err.Error())).Build(), nil
	}

	keys := make([]string, 0, len(me.Details))
	for k := range me.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	topic, hasTopic := topicFor[me.Code]
	return tokens.New().
		Text("[%s] ", me.Code).
		Include(lines(me.Message)).
		Include(func(b *tokens.Builder) {
			for _, k := range keys {
				b.NewLine().Text("  %s: %v", k, me.Details[k])
			}
		}).
		If(me.Wrapped != nil, func(b *tokens.Builder) {
			b.NewLine().Text("  caused by: ").Include(lines(fmt.Sprint(me.Wrapped)))
		}).
		If(hasTopic, SeeAlso(topic)).
		Build(), nil
}

func renderWelcome(msg message.Message) (tokens.Sequence, error) {
	fields := msg.Fields()
	app, ok := fields[0].(string)
	if !ok {
		return nil, renderer.ErrNotApplicable
	}
	return tokens.New().
		Styled("heading", "Welcome to %s", app).
		NewLine().
		Text("Run '%s topics' to browse the help topics.", app).
		NewLine().
		Text("Version %d.%d", fields[1], fields[2]).
		Build(), nil
}

// partUsedBy is the enriched alternative; it declines when the catalog
// has nothing to say.
func partUsedBy(cat catalog.Catalog) renderer.Func {
	return func(msg message.Message) (tokens.Sequence, error) {
		f, _ := msg.Field(0)
		part, ok := f.(int)
		if !ok {
			return nil, renderer.ErrNotApplicable
		}
		product, ok := cat.ProductFor(part)
		if !ok {
			return nil, renderer.ErrNotApplicable
		}
		return tokens.New().Text("Part %d is only used by product %s", part, product).Build(), nil
	}
}

func renderNoSuchPart(msg message.Message) (tokens.Sequence, error) {
	f, _ := msg.Field(0)
	return tokens.New().Text("Part %v is not defined or used", f).Build(), nil
}
