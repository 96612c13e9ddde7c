// Package pipeline coordinates message display.
//
// Process resolves a message to tokens, offers the result to the hook
// chains, and when no hook claims it writes the block once to the stream
// chosen by the kind's properties:
//
//	msg -> renderer.Resolve -> hooks.Dispatch -> visibility gate -> emitter
//
// Only destination failures are returned. Unknown shapes, failing
// renderers and failing hooks degrade quietly.
package pipeline
