// Package hooks lets code intercept a message after it has been rendered
// to tokens and before the default emitter prints it.
//
// Two ordered chains exist. The context-scoped chain travels with a
// context.Context (WithHook derives a new context, so goroutines never see
// each other's hooks). The process-wide chain (Global) is shared and
// changes only through Register / Unregister. Dispatch consults the
// context chain first, then the global one; the first hook that reports
// handled=true stops the pipeline.
//
// A hook that returns an error or panics is treated as not having handled
// the message. Hooks receive their own copy of the tokens.
package hooks
