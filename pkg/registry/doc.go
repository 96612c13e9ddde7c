// Package registry provides a generic, thread-safe registry that keeps
// items in registration order. It backs the renderer alternatives and
// the process-wide hook chain, where the order of registration is the
// order of evaluation.
package registry
