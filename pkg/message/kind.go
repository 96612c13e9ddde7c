package message

import (
	"strings"

	"github.com/arthur-debert/msgkit/pkg/errors"
)

// Kind classifies a report (severity or category). It is an open set:
// any non-empty string is a valid kind.
type Kind string

// Built-in kinds
const (
	KindError         Kind = "error"
	KindWarning       Kind = "warning"
	KindInformational Kind = "informational"
	KindBanner        Kind = "banner"
	KindHelp          Kind = "help"
	KindQuery         Kind = "query"
	KindSilent        Kind = "silent"
	KindDebug         Kind = "debug"
)

const debugSep = ":"

// Debug returns the kind for debug messages on topic.
func Debug(topic string) Kind {
	if topic == "" {
		return KindDebug
	}
	return Kind(string(KindDebug) + debugSep + topic)
}

// Topic returns the debug topic, or "" for non-debug kinds.
func (k Kind) Topic() string {
	if rest, ok := strings.CutPrefix(string(k), string(KindDebug)+debugSep); ok {
		return rest
	}
	return ""
}

// IsDebug reports whether k is debug or debug:<topic>.
func (k Kind) IsDebug() bool {
	return k == KindDebug || k.Topic() != ""
}

// Base collapses debug:<topic> to debug and returns other kinds unchanged.
func (k Kind) Base() Kind {
	if k.IsDebug() {
		return KindDebug
	}
	return k
}

func (k Kind) String() string { return string(k) }

// ParseKind accepts plain kinds and the debug(topic) / debug:topic forms.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(errors.ErrInvalidInput, "kind cannot be empty")
	}
	if rest, ok := strings.CutPrefix(s, "debug("); ok {
		topic, closed := strings.CutSuffix(rest, ")")
		if !closed || topic == "" || strings.ContainsAny(topic, "()") {
			return "", errors.Newf(errors.ErrInvalidInput, "malformed debug kind %q", s)
		}
		return Debug(topic), nil
	}
	if strings.ContainsAny(s, "() \t") {
		return "", errors.Newf(errors.ErrInvalidInput, "malformed kind %q", s)
	}
	return Kind(s), nil
}
