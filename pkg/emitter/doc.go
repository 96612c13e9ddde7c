// Package emitter turns token sequences into prefixed lines on a
// destination.
//
// A Stream wraps an io.Writer. Each Emit call formats the whole block in
// memory and writes it while holding the stream lock, so blocks from
// concurrent goroutines never interleave. A Flush token forces the pending
// text out immediately and, when it is the last token, suppresses the
// implicit trailing newline.
//
// Style tokens only take effect when the stream has colour enabled; the
// active style lasts until a "reset" style or the end of the line.
package emitter
