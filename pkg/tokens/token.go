package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the kind of a token.
type Type uint8

const (
	TypeText Type = iota
	TypeNewLine
	TypeFlush
	TypeStyle
)

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNewLine:
		return "nl"
	case TypeFlush:
		return "flush"
	case TypeStyle:
		return "style"
	}
	return "unknown"
}

// ResetStyle is the style attribute that clears the active style.
const ResetStyle = "reset"

// Token is a single immutable output instruction.
type Token struct {
	typ    Type
	format string
	args   []any
	attr   string
}

// Text returns a text token. Without args the format is written verbatim.
func Text(format string, args ...any) Token {
	t := Token{typ: TypeText, format: format}
	if len(args) > 0 {
		t.args = make([]any, len(args))
		copy(t.args, args)
	}
	return t
}

// NewLine returns a line break token.
func NewLine() Token { return Token{typ: TypeNewLine} }

// Flush returns a flush token.
func Flush() Token { return Token{typ: TypeFlush} }

// Style returns a style directive token.
func Style(attr string) Token { return Token{typ: TypeStyle, attr: attr} }

// Type returns the token type.
func (t Token) Type() Type { return t.typ }

// Format returns the text template.
func (t Token) Format() string { return t.format }

// Args returns a copy of the template arguments.
func (t Token) Args() []any {
	out := make([]any, len(t.args))
	copy(out, t.args)
	return out
}

// Attr returns the style attribute of a style token.
func (t Token) Attr() string { return t.attr }

// Render returns the formatted text of a text token and "" otherwise.
func (t Token) Render() string {
	if t.typ != TypeText {
		return ""
	}
	if len(t.args) == 0 {
		return t.format
	}
	return fmt.Sprintf(t.format, t.args...)
}

// String describes the token for debugging and test failures.
func (t Token) String() string {
	switch t.typ {
	case TypeText:
		if len(t.args) == 0 {
			return "text(" + strconv.Quote(t.format) + ")"
		}
		args := make([]string, len(t.args))
		for i, a := range t.args {
			args[i] = fmt.Sprintf("%v", a)
		}
		return "text(" + strconv.Quote(t.format) + ", " + strings.Join(args, ", ") + ")"
	case TypeStyle:
		return "style(" + t.attr + ")"
	}
	return t.typ.String()
}
