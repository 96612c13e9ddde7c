// Package testutil provides helpers shared by msgkit tests.
//
// Key components:
//   - Buffer: a goroutine-safe capture destination with Flush accounting
//   - FailingWriter: a destination that always errors
//   - Recorder: a hook that records every message it sees
//   - CreateFile: writes fixture files into a temp dir
package testutil
