package message

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape identifies the family of a message: its tag and field count.
type Shape struct {
	Tag   string
	Arity int
}

// String returns the tag/arity form used as a registry key.
func (s Shape) String() string {
	return s.Tag + "/" + strconv.Itoa(s.Arity)
}

// Location is the source position a message refers to.
type Location struct {
	File string
	Line int
}

// String returns "file:line", or just the file when the line is unknown.
func (l Location) String() string {
	if l.Line <= 0 {
		return l.File
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// Message is an immutable semantic message.
type Message struct {
	tag    string
	fields []any
	loc    *Location
}

// New builds a message. The fields slice is copied.
func New(tag string, fields ...any) Message {
	m := Message{tag: tag}
	if len(fields) > 0 {
		m.fields = make([]any, len(fields))
		copy(m.fields, fields)
	}
	return m
}

// Tag returns the message tag.
func (m Message) Tag() string { return m.tag }

// Arity returns the number of fields.
func (m Message) Arity() int { return len(m.fields) }

// Shape returns the tag/arity pair.
func (m Message) Shape() Shape {
	return Shape{Tag: m.tag, Arity: len(m.fields)}
}

// Field returns the i-th field.
func (m Message) Field(i int) (any, bool) {
	if i < 0 || i >= len(m.fields) {
		return nil, false
	}
	return m.fields[i], true
}

// Fields returns a copy of all fields.
func (m Message) Fields() []any {
	out := make([]any, len(m.fields))
	copy(out, m.fields)
	return out
}

// IsZero reports whether the message has no tag.
func (m Message) IsZero() bool { return m.tag == "" }

// At returns a copy of m pointing at file:line.
func (m Message) At(file string, line int) Message {
	m.loc = &Location{File: file, Line: line}
	return m
}

// Location returns the source location, if any.
func (m Message) Location() (Location, bool) {
	if m.loc == nil {
		return Location{}, false
	}
	return *m.loc, true
}

// String renders the raw term, e.g. no_such_part(42) or format("%d", [3]).
func (m Message) String() string {
	if len(m.fields) == 0 {
		return m.tag
	}
	var b strings.Builder
	b.WriteString(m.tag)
	b.WriteByte('(')
	for i, f := range m.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatField(f))
	}
	b.WriteByte(')')
	return b.String()
}

func formatField(f any) string {
	switch v := f.(type) {
	case string:
		return strconv.Quote(v)
	case Message:
		return v.String()
	case error:
		return strconv.Quote(v.Error())
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatField(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
