package testutil

import (
	"bytes"
	"errors"
	"strings"
	"sync"
)

// Buffer is a goroutine-safe writer that counts Flush calls.
type Buffer struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	writes  int
	flushes int
	// flushedAt records the buffer length at each Flush.
	flushedAt []int
}

// Write implements io.Writer
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	return b.buf.Write(p)
}

// Flush records the call.
func (b *Buffer) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushes++
	b.flushedAt = append(b.flushedAt, b.buf.Len())
	return nil
}

// String returns everything written so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines splits the output on "\n", dropping the final empty element.
func (b *Buffer) Lines() []string {
	s := b.String()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Writes returns the number of Write calls.
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// Flushes returns the number of Flush calls.
func (b *Buffer) Flushes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushes
}

// FlushedAt returns the output length observed at each Flush.
func (b *Buffer) FlushedAt() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.flushedAt...)
}

// ErrBrokenPipe is returned by FailingWriter.
var ErrBrokenPipe = errors.New("broken pipe")

// FailingWriter rejects every write, or every flush when FailFlush is set.
type FailingWriter struct {
	FailFlush bool
}

// Write implements io.Writer
func (f *FailingWriter) Write(p []byte) (int, error) {
	if f.FailFlush {
		return len(p), nil
	}
	return 0, ErrBrokenPipe
}

// Flush fails when FailFlush is set.
func (f *FailingWriter) Flush() error {
	if f.FailFlush {
		return ErrBrokenPipe
	}
	return nil
}
