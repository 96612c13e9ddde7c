package style

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/msgkit/pkg/errors"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"ALWAYS", ColorAlways},
		{"never", ColorNever},
		{"off", ColorNever},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
}

func TestDetectColorNonTerminal(t *testing.T) {
	assert.False(t, DetectColor(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, DetectColor(f))
}

func TestDetectColorHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, DetectColor(os.Stdout))
	assert.False(t, ColorAuto.Enabled(os.Stdout))
}

func TestStylerAlwaysEmitsEscapes(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorAlways)
	require.True(t, s.Enabled())

	out := s.Apply("bold red", "alert")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "alert")
}

func TestStylerNeverIsPassThrough(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorNever)
	assert.False(t, s.Enabled())
	assert.Equal(t, "alert", s.Apply("bold red", "alert"))

	assert.Equal(t, "alert", Plain().Apply("error", "alert"))
}

func TestStylerUnknownAttributePassThrough(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorAlways)
	assert.Equal(t, "alert", s.Apply("sparkly", "alert"))
}

func TestParseAttributes(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorAlways)

	valid := []string{
		"bold",
		"italic underline",
		"faint,strike",
		"red",
		"fg=#ff8800",
		"bg=blue fg=white",
		"fg=#abc",
		"208",
		"error",
		"warning bold",
		"",
	}
	for _, attr := range valid {
		t.Run(attr, func(t *testing.T) {
			_, err := s.Parse(attr)
			assert.NoError(t, err)
		})
	}

	invalid := []string{"sparkly", "fg=#zzzzzz", "ul=red", "999", "#12345"}
	for _, attr := range invalid {
		t.Run("invalid "+attr, func(t *testing.T) {
			_, err := s.Parse(attr)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestParseSetsProperties(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorAlways)
	st, err := s.Parse("bold italic underline")
	require.NoError(t, err)
	assert.True(t, st.GetBold())
	assert.True(t, st.GetItalic())
	assert.True(t, st.GetUnderline())
}
