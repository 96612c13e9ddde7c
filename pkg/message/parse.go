package message

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/arthur-debert/msgkit/pkg/errors"
)

// Parse reads a message written as a term:
//
//	no_such_part(42)
//	format("%d files in %s", 3, "/tmp")
//	wrapped(inner(true), [1, 2.5, word])
//
// Fields are integers, floats, booleans, quoted strings, bare words
// (kept as strings), nested terms and [lists].
func Parse(src string) (Message, error) {
	p := &termParser{src: src}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.fail(msg) }
	p.next()

	m, ok := p.term()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected " + p.s.TokenText() + " after term")
	}
	if p.err != nil || !ok {
		if p.err == nil {
			p.fail("expected a term")
		}
		return Message{}, p.err
	}
	return m, nil
}

type termParser struct {
	src string
	s   scanner.Scanner
	tok rune
	err error
}

func (p *termParser) next() { p.tok = p.s.Scan() }

func (p *termParser) fail(msg string) {
	if p.err != nil {
		return
	}
	p.err = errors.Newf(errors.ErrInvalidInput, "cannot parse %q: %s", p.src, msg).
		WithDetail("offset", p.s.Position.Offset)
}

func (p *termParser) term() (Message, bool) {
	if p.tok != scanner.Ident {
		p.fail("expected a tag")
		return Message{}, false
	}
	tag := p.s.TokenText()
	p.next()
	if p.tok != '(' {
		return New(tag), true
	}
	p.next()

	var fields []any
	for p.tok != ')' {
		if len(fields) > 0 {
			if p.tok != ',' {
				p.fail("expected , or )")
				return Message{}, false
			}
			p.next()
		}
		f, ok := p.value()
		if !ok {
			return Message{}, false
		}
		fields = append(fields, f)
	}
	p.next()
	return New(tag, fields...), true
}

func (p *termParser) value() (any, bool) {
	neg := false
	if p.tok == '-' {
		neg = true
		p.next()
	}

	text := p.s.TokenText()
	switch p.tok {
	case scanner.Int:
		if neg {
			text = "-" + text
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			p.fail(err.Error())
			return nil, false
		}
		p.next()
		return n, true

	case scanner.Float:
		if neg {
			text = "-" + text
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.fail(err.Error())
			return nil, false
		}
		p.next()
		return f, true

	case scanner.String:
		s, err := strconv.Unquote(text)
		if err != nil {
			p.fail(err.Error())
			return nil, false
		}
		p.next()
		return s, true

	case '[':
		p.next()
		list := []any{}
		for p.tok != ']' {
			if len(list) > 0 {
				if p.tok != ',' {
					p.fail("expected , or ]")
					return nil, false
				}
				p.next()
			}
			v, ok := p.value()
			if !ok {
				return nil, false
			}
			list = append(list, v)
		}
		p.next()
		return list, true

	case scanner.Ident:
		if neg {
			p.fail("unexpected - before " + text)
			return nil, false
		}
		switch text {
		case "true", "false":
			p.next()
			return text == "true", true
		}
		m, ok := p.term()
		if !ok {
			return nil, false
		}
		if m.Arity() == 0 {
			return m.Tag(), true
		}
		return m, true
	}

	if p.tok == scanner.EOF {
		p.fail("unexpected end of input")
	} else {
		p.fail("unexpected " + text)
	}
	return nil, false
}
