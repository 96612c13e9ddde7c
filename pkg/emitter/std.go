package emitter

import (
	"os"
	"sync"
)

var (
	stdOnce   sync.Once
	stdout    *Stream
	stderrStr *Stream
)

func initStd() {
	stdOnce.Do(func() {
		stdout = NewStream(os.Stdout, WithName("user_output"))
		stderrStr = NewStream(os.Stderr, WithName("user_error"))
	})
}

// Stdout is the process-wide stream for user output.
func Stdout() *Stream {
	initStd()
	return stdout
}

// Stderr is the process-wide stream for user-facing errors.
func Stderr() *Stream {
	initStd()
	return stderrStr
}
