package tokens

// Builder composes a Sequence. Every method returns the builder so calls
// chain; guards and sub-sequences are ordinary Go functions.
//
//	seq := tokens.New().
//		Text("Part %d is not defined or used", id).
//		If(product != "", func(b *tokens.Builder) {
//			b.NewLine().Text("It belongs to %s", product)
//		}).
//		Build()
type Builder struct {
	toks Sequence
}

// New returns an empty builder.
func New() *Builder { return &Builder{} }

// Text appends a text token.
func (b *Builder) Text(format string, args ...any) *Builder {
	b.toks = append(b.toks, Text(format, args...))
	return b
}

// Line appends a text token followed by a newline.
func (b *Builder) Line(format string, args ...any) *Builder {
	b.toks = append(b.toks, Text(format, args...), NewLine())
	return b
}

// NewLine appends a line break.
func (b *Builder) NewLine() *Builder {
	b.toks = append(b.toks, NewLine())
	return b
}

// Flush appends a flush directive.
func (b *Builder) Flush() *Builder {
	b.toks = append(b.toks, Flush())
	return b
}

// Style appends a style directive.
func (b *Builder) Style(attr string) *Builder {
	b.toks = append(b.toks, Style(attr))
	return b
}

// Styled appends text wrapped in attr and a reset.
func (b *Builder) Styled(attr, format string, args ...any) *Builder {
	b.toks = append(b.toks, Style(attr), Text(format, args...), Style(ResetStyle))
	return b
}

// Append appends every token of seq.
func (b *Builder) Append(seq Sequence) *Builder {
	b.toks = append(b.toks, seq...)
	return b
}

// Include runs fn against the builder, for reusable sub-sequences.
func (b *Builder) Include(fn func(*Builder)) *Builder {
	if fn != nil {
		fn(b)
	}
	return b
}

// If runs then when cond holds.
func (b *Builder) If(cond bool, then func(*Builder)) *Builder {
	if cond {
		return b.Include(then)
	}
	return b
}

// IfElse runs then when cond holds and otherwise els.
func (b *Builder) IfElse(cond bool, then, els func(*Builder)) *Builder {
	if cond {
		return b.Include(then)
	}
	return b.Include(els)
}

// Len returns the number of tokens so far.
func (b *Builder) Len() int { return len(b.toks) }

// Build returns a copy of the tokens; the builder can keep being used.
func (b *Builder) Build() Sequence {
	return b.toks.Clone()
}
