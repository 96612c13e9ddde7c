// Package message defines semantic messages: structured, immutable
// descriptions of a condition (a missing part, a failed load, a banner)
// that carry no rendered text of their own.
//
// A Message is a tag plus an ordered list of fields. Its Shape (tag and
// arity) is the key renderers are registered under. The Kind a message is
// reported with (error, warning, banner, ...) is chosen at report time and
// is not part of the message.
//
//	msg := message.New("no_such_part", 42)
//	msg.Shape().String() // "no_such_part/1"
//	msg.String()         // "no_such_part(42)"
package message
