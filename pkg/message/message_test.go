package message_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/message"
)

func TestNewCopiesFields(t *testing.T) {
	fields := []any{42, "SKT-9"}
	msg := message.New("part_owner", fields...)
	fields[0] = 7

	got, ok := msg.Field(0)
	require.True(t, ok)
	assert.Equal(t, 42, got)

	out := msg.Fields()
	out[1] = "changed"
	again, _ := msg.Field(1)
	assert.Equal(t, "SKT-9", again)
}

func TestShape(t *testing.T) {
	tests := []struct {
		name string
		msg  message.Message
		want string
	}{
		{"atom", message.New("halt"), "halt/0"},
		{"unary", message.New("no_such_part", 42), "no_such_part/1"},
		{"format", message.Format("%d items", 3), "format/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.Shape().String())
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		msg  message.Message
		want string
	}{
		{"atom", message.New("halt"), "halt"},
		{"int field", message.New("no_such_part", 42), "no_such_part(42)"},
		{"string field", message.New("load", "a.cfg", 3), `load("a.cfg", 3)`},
		{"nested", message.New("wrap", message.New("inner", 1)), "wrap(inner(1))"},
		{"list", message.New("args", []any{1, "x"}), `args([1, "x"])`},
		{"error", message.FromError(stderrors.New("boom")), `go_error("boom")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}

func TestFieldOutOfRange(t *testing.T) {
	msg := message.New("no_such_part", 42)

	_, ok := msg.Field(1)
	assert.False(t, ok)
	_, ok = msg.Field(-1)
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	msg := message.New("no_such_part", 42)
	located := msg.At("parts.cfg", 12)

	_, ok := msg.Location()
	assert.False(t, ok, "At must not modify the original")

	loc, ok := located.Location()
	require.True(t, ok)
	assert.Equal(t, "parts.cfg:12", loc.String())
	assert.Equal(t, "parts.cfg", message.Location{File: "parts.cfg"}.String())
}

func TestKind(t *testing.T) {
	k := message.Debug("render")

	assert.Equal(t, message.Kind("debug:render"), k)
	assert.Equal(t, "render", k.Topic())
	assert.True(t, k.IsDebug())
	assert.Equal(t, message.KindDebug, k.Base())

	assert.Equal(t, "", message.KindError.Topic())
	assert.False(t, message.KindError.IsDebug())
	assert.Equal(t, message.KindError, message.KindError.Base())
	assert.Equal(t, message.KindDebug, message.Debug(""))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    message.Kind
		wantErr bool
	}{
		{in: "error", want: message.KindError},
		{in: " warning ", want: message.KindWarning},
		{in: "debug(hooks)", want: message.Debug("hooks")},
		{in: "debug:hooks", want: message.Debug("hooks")},
		{in: "custom", want: message.Kind("custom")},
		{in: "", wantErr: true},
		{in: "debug(", wantErr: true},
		{in: "debug()", wantErr: true},
		{in: "two words", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := message.ParseKind(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
