package tokens

import (
	"slices"
	"strings"
)

// Sequence is an ordered list of tokens.
type Sequence []Token

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	return slices.Clone(s)
}

// EndsWithFlush reports whether the last token is a Flush.
func (s Sequence) EndsWithFlush() bool {
	return len(s) > 0 && s[len(s)-1].typ == TypeFlush
}

// HasOutput reports whether s contains a Text or NewLine token. Style and
// Flush alone write nothing.
func (s Sequence) HasOutput() bool {
	for _, t := range s {
		if t.typ == TypeText || t.typ == TypeNewLine {
			return true
		}
	}
	return false
}

// Lines renders the sequence into plain lines. A line still open at the
// end is included; a trailing NewLine does not add an empty line.
func (s Sequence) Lines() []string {
	var (
		lines []string
		cur   strings.Builder
		open  bool
	)
	for _, t := range s {
		switch t.typ {
		case TypeText:
			cur.WriteString(t.Render())
			open = true
		case TypeNewLine:
			lines = append(lines, cur.String())
			cur.Reset()
			open = false
		}
	}
	if open {
		lines = append(lines, cur.String())
	}
	return lines
}

// String joins Lines with "\n", without a trailing newline.
func (s Sequence) String() string {
	return strings.Join(s.Lines(), "\n")
}
