package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/msgkit/pkg/catalog"
	"github.com/arthur-debert/msgkit/pkg/emitter"
	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/registry"
	"github.com/arthur-debert/msgkit/pkg/testutil"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

func TestEmitterWriteFailure(t *testing.T) {
	tests := []struct {
		name    string
		writer  *testutil.FailingWriter
		seq     tokens.Sequence
		wantMsg string
	}{
		{
			name:    "write",
			writer:  &testutil.FailingWriter{},
			seq:     tokens.Sequence{tokens.Text("Part 7 is not defined or used")},
			wantMsg: "write to user_error failed",
		},
		{
			name:    "flush",
			writer:  &testutil.FailingWriter{FailFlush: true},
			seq:     tokens.Sequence{tokens.Text("Proceed? "), tokens.Flush()},
			wantMsg: "flush to user_error failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emitter.NewStream(tt.writer, emitter.WithName("user_error"))
			err := s.Emit("ERROR: ", tt.seq)
			require.Error(t, err)

			me, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrWriteFailed, me.Code)
			assert.Equal(t, tt.wantMsg, me.Message)
			assert.Equal(t, "user_error", errors.GetErrorDetails(err)["stream"])
			assert.ErrorIs(t, err, testutil.ErrBrokenPipe)
			assert.Equal(t, fmt.Sprintf("[WRITE_FAILED] %s: broken pipe", tt.wantMsg), err.Error())
		})
	}
}

func TestRegistryCodes(t *testing.T) {
	reg := registry.New[string]()
	require.NoError(t, reg.Register("capture", "first"))

	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"duplicate", reg.Register("capture", "second"), errors.ErrAlreadyExists},
		{"empty name", reg.Register("", "x"), errors.ErrInvalidInput},
		{"missing", func() error { _, err := reg.Get("audit"); return err }(), errors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsErrorCode(tt.err, tt.code), "got %v", tt.err)
			assert.Equal(t, tt.code, errors.GetErrorCode(tt.err))
		})
	}
}

func TestCatalogLoadCarriesPath(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "parts.yaml")
	_, err := catalog.Load(missing)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCatalogLoad, errors.GetErrorCode(err))
	assert.Equal(t, missing, errors.GetErrorDetails(err)["path"])
	assert.ErrorIs(t, err, os.ErrNotExist)

	badKey := testutil.CreateFile(t, dir, "bad.yaml", "parts:\n  nine: SKT-9\n")
	_, err = catalog.Load(badKey)
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, badKey, details["path"])
	assert.Equal(t, errors.ErrCatalogLoad, errors.GetErrorCode(err))
}

func TestHookFailureWrapping(t *testing.T) {
	cause := stderrors.New("audit log closed")
	err := errors.Wrapf(cause, errors.ErrHookFailed, "hook %s", "audit").
		WithDetails(map[string]interface{}{"hook": "audit", "shape": "no_such_part/1"})

	assert.Equal(t, "[HOOK_FAILED] hook audit: audit log closed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no_such_part/1", err.Details["shape"])

	// Is compares codes, so any HOOK_FAILED matches.
	assert.ErrorIs(t, err, errors.New(errors.ErrHookFailed, ""))
	assert.NotErrorIs(t, err, errors.New(errors.ErrRenderFailed, ""))
}

func TestRenderFailureFromPanic(t *testing.T) {
	err := errors.Newf(errors.ErrRenderFailed, "renderer panicked: %v", "index out of range").
		WithDetail("shape", "welcome/3")

	assert.Equal(t, "[RENDER_FAILED] renderer panicked: index out of range", err.Error())
	assert.Nil(t, stderrors.Unwrap(err))
	assert.Equal(t, map[string]interface{}{"shape": "welcome/3"}, err.Details)
}

func TestNilAndForeignErrors(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrWriteFailed, "write"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrWriteFailed, "write to %s", "user_output"))

	plain := fmt.Errorf("dial tcp: refused")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	_, ok := errors.As(plain)
	assert.False(t, ok)

	wrapped := fmt.Errorf("setup: %w", errors.New(errors.ErrConfigInvalid, "bad verbosity"))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigInvalid))
}

func TestWithDetailOnZeroValue(t *testing.T) {
	e := &errors.MsgkitError{Code: errors.ErrConfigInvalid, Message: "2 problems"}
	e.WithDetail("problems", []string{"output.color", "kinds.error.stream"})
	assert.Len(t, e.Details["problems"], 2)
}
