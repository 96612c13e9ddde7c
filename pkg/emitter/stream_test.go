package emitter_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/msgkit/pkg/emitter"
	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/style"
	"github.com/arthur-debert/msgkit/pkg/testutil"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

func plain(w *testutil.Buffer) *emitter.Stream {
	return emitter.NewStream(w, emitter.WithColor(style.ColorNever), emitter.WithName("test"))
}

func TestEmitPrefixesEveryLine(t *testing.T) {
	buf := &testutil.Buffer{}
	seq := tokens.New().
		Line("first").
		Text("second %d", 2).
		Build()

	require.NoError(t, plain(buf).Emit("ERROR: ", seq))
	assert.Equal(t, "ERROR: first\nERROR: second 2\n", buf.String())
}

func TestEmitRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		seq  tokens.Sequence
	}{
		{"single text", tokens.New().Text("hello").Build()},
		{"trailing newline", tokens.New().Line("hello").Build()},
		{"leading blank", tokens.New().NewLine().Text("b").Build()},
		{"inner blank", tokens.New().Line("a").NewLine().Text("b").Build()},
		{"split text", tokens.New().Text("a").Text("b").NewLine().Text("c").Build()},
		{"styles", tokens.New().Styled("bold", "x").Text("y").Build()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &testutil.Buffer{}
			require.NoError(t, plain(buf).Emit("", tt.seq))
			assert.Equal(t, tt.seq.String()+"\n", buf.String())
		})
	}
}

func TestEmitBlankLineUsesTrimmedPrefix(t *testing.T) {
	buf := &testutil.Buffer{}
	seq := tokens.New().Line("a").NewLine().Text("b").Build()

	require.NoError(t, plain(buf).Emit("> ", seq))
	assert.Equal(t, "> a\n>\n> b\n", buf.String())
}

func TestEmitTrailingNewLineNoDoubleBreak(t *testing.T) {
	buf := &testutil.Buffer{}
	require.NoError(t, plain(buf).Emit("", tokens.New().Line("done").Build()))
	assert.Equal(t, "done\n", buf.String())
}

func TestEmitTrailingFlushSuppressesNewline(t *testing.T) {
	buf := &testutil.Buffer{}
	seq := tokens.New().Text("Continue? ").Flush().Build()

	require.NoError(t, plain(buf).Emit("", seq))
	assert.Equal(t, "Continue? ", buf.String())
	assert.Equal(t, 1, buf.Flushes())
}

func TestEmitMidSequenceFlush(t *testing.T) {
	buf := &testutil.Buffer{}
	seq := tokens.New().Text("Working...").Flush().Text(" done").Build()

	require.NoError(t, plain(buf).Emit("", seq))
	assert.Equal(t, "Working... done\n", buf.String())
	assert.Equal(t, []int{len("Working...")}, buf.FlushedAt())
}

func TestEmitEmptySequenceWritesNothing(t *testing.T) {
	buf := &testutil.Buffer{}
	require.NoError(t, plain(buf).Emit("x ", nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, buf.Writes())
}

func TestEmitWritesBlockOnce(t *testing.T) {
	buf := &testutil.Buffer{}
	seq := tokens.New().Line("a").Line("b").Line("c").Build()

	require.NoError(t, plain(buf).Emit("", seq))
	assert.Equal(t, 1, buf.Writes())
}

func TestEmitStylesOnlyWhenColored(t *testing.T) {
	seq := tokens.New().Style("bold").Text("loud").Style("reset").Text(" quiet").Build()

	buf := &testutil.Buffer{}
	require.NoError(t, plain(buf).Emit("", seq))
	assert.Equal(t, "loud quiet\n", buf.String())

	colored := &testutil.Buffer{}
	s := emitter.NewStream(colored, emitter.WithColor(style.ColorAlways))
	require.True(t, s.Colored())
	require.NoError(t, s.Emit("", seq))
	out := colored.String()
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasSuffix(out, " quiet\n"), "reset text must be plain: %q", out)
}

func TestEmitNewLineClearsStyle(t *testing.T) {
	colored := &testutil.Buffer{}
	s := emitter.NewStream(colored, emitter.WithColor(style.ColorAlways))
	seq := tokens.New().Style("red").Line("a").Text("b").Build()

	require.NoError(t, s.Emit("", seq))
	assert.True(t, strings.HasSuffix(colored.String(), "\nb\n"), "%q", colored.String())
}

func TestEmitWriteFailure(t *testing.T) {
	s := emitter.NewStream(&testutil.FailingWriter{}, emitter.WithName("user_error"))
	err := emitter.Emit(s, "", tokens.New().Text("lost").Build())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFailed))
	assert.ErrorIs(t, err, testutil.ErrBrokenPipe)
	assert.Equal(t, "user_error", errors.GetErrorDetails(err)["stream"])
}

func TestEmitFlushFailure(t *testing.T) {
	s := emitter.NewStream(&testutil.FailingWriter{FailFlush: true})
	err := s.Emit("", tokens.New().Text("?").Flush().Build())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFailed))
}

func TestStreamAccessors(t *testing.T) {
	var w bytes.Buffer
	s := emitter.NewStream(&w, emitter.WithName("user_output"))
	assert.Equal(t, "user_output", s.Name())
	assert.Equal(t, &w, s.Writer())
	assert.False(t, s.Colored())
	assert.NoError(t, s.Flush())

	assert.Equal(t, "user_output", emitter.Stdout().Name())
	assert.Equal(t, "user_error", emitter.Stderr().Name())
}

func TestConcurrentBlocksDoNotInterleave(t *testing.T) {
	defer goleak.VerifyNone(t)

	buf := &testutil.Buffer{}
	s := plain(buf)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 20; j++ {
				seq := tokens.New().
					Line("begin %d", i).
					Line("middle %d", i).
					Text("end %d", i).
					Build()
				if err := s.Emit("", seq); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	lines := buf.Lines()
	require.Len(t, lines, 16*20*3)
	for k := 0; k < len(lines); k += 3 {
		var id int
		_, err := fmt.Sscanf(lines[k], "begin %d", &id)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("middle %d", id), lines[k+1])
		assert.Equal(t, fmt.Sprintf("end %d", id), lines[k+2])
	}
}
