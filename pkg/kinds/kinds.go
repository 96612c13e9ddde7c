// Package kinds maps message kinds to display properties.
//
// A Table is immutable once built. Lookup falls back from the exact kind
// to its base (every debug:<topic> uses "debug") and then to "default",
// so callers never special-case individual kinds.
package kinds

import (
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/style"
)

// StreamID names a destination.
type StreamID string

const (
	UserOutput StreamID = "user_output"
	UserError  StreamID = "user_error"
)

// ParseStreamID validates a stream name; empty means UserOutput.
func ParseStreamID(s string) (StreamID, error) {
	switch StreamID(strings.ToLower(strings.TrimSpace(s))) {
	case UserOutput, "":
		return UserOutput, nil
	case UserError:
		return UserError, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown stream %q", s).
			WithDetail("valid", []string{string(UserOutput), string(UserError)})
	}
}

// DefaultKind is the fallback entry name.
const DefaultKind message.Kind = "default"

// Properties controls how messages of one kind are displayed.
type Properties struct {
	// Prefix is the label written before every line, e.g. "ERROR:".
	Prefix string
	// Color holds style attributes applied to the label.
	Color string
	Stream StreamID
	// Location adds "file:line: " when the message carries one.
	Location bool
	// Wait pauses after display.
	Wait time.Duration
}

// LinePrefix builds the per-line prefix for msg.
func (p Properties) LinePrefix(st *style.Styler, msg message.Message) string {
	var b strings.Builder
	if p.Prefix != "" {
		label := p.Prefix
		if p.Color != "" && st != nil {
			label = st.Apply(p.Color, label)
		}
		b.WriteString(label)
		b.WriteByte(' ')
	}
	if p.Location {
		if loc, ok := msg.Location(); ok {
			b.WriteString(loc.String())
			b.WriteString(": ")
		}
	}
	return b.String()
}

// Table is a kind -> Properties lookup.
type Table struct {
	entries map[message.Kind]Properties
}

// NewTable copies entries. A missing "default" entry writes unlabelled
// to user_output.
func NewTable(entries map[message.Kind]Properties) Table {
	t := Table{entries: make(map[message.Kind]Properties, len(entries)+1)}
	for k, p := range entries {
		if p.Stream == "" {
			p.Stream = UserOutput
		}
		t.entries[k] = p
	}
	if _, ok := t.entries[DefaultKind]; !ok {
		t.entries[DefaultKind] = Properties{Stream: UserOutput}
	}
	return t
}

// Lookup resolves kind: exact, then base, then default.
func (t Table) Lookup(kind message.Kind) Properties {
	if p, ok := t.entries[kind]; ok {
		return p
	}
	if p, ok := t.entries[kind.Base()]; ok {
		return p
	}
	if p, ok := t.entries[DefaultKind]; ok {
		return p
	}
	return Properties{Stream: UserOutput}
}

// Has reports whether kind has its own entry.
func (t Table) Has(kind message.Kind) bool {
	_, ok := t.entries[kind]
	return ok
}

// Kinds lists configured kinds, sorted.
func (t Table) Kinds() []message.Kind {
	out := make([]message.Kind, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
