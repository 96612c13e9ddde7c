// Package tokens defines the primitive output instructions a renderer
// expands a semantic message into, and a Builder for composing them.
//
// A Sequence is finite and fully materialised before anyone consumes it.
// Four token types exist:
//
//   - Text: a fmt template plus its arguments
//   - NewLine: ends the current line
//   - Flush: flush the destination; as the final token it also suppresses
//     the implicit trailing newline
//   - Style: a styling directive (e.g. "bold", "red", "reset") for the
//     text that follows on the same line
//
// Sequence.Lines and Sequence.String convert a sequence to plain text
// without side effects. Their output matches what the emitter writes for
// the same sequence with an empty prefix and no colour.
package tokens
