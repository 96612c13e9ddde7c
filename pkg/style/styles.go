package style

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/msgkit/pkg/errors"
)

// Styler turns style attributes into ANSI sequences for one writer.
// A disabled Styler returns text untouched.
type Styler struct {
	renderer *lipgloss.Renderer
	enabled  bool
}

// NewStyler binds a lipgloss renderer to w according to mode.
func NewStyler(w io.Writer, mode ColorMode) *Styler {
	enabled := mode.Enabled(w)
	r := lipgloss.NewRenderer(w)
	if enabled {
		if mode == ColorAlways {
			r.SetColorProfile(termenv.TrueColor)
			r.SetHasDarkBackground(true)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styler{renderer: r, enabled: enabled}
}

// Plain returns a Styler that never emits escape sequences.
func Plain() *Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return &Styler{renderer: r}
}

// Enabled reports whether styling is applied.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// Parse builds a style from an attribute string such as
// "bold red", "fg=#ff8800,bg=blue" or "error".
func (s *Styler) Parse(attr string) (lipgloss.Style, error) {
	st := s.renderer.NewStyle()
	words := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	for _, w := range words {
		w = strings.ToLower(w)
		switch w {
		case "bold":
			st = st.Bold(true)
		case "italic":
			st = st.Italic(true)
		case "underline":
			st = st.Underline(true)
		case "faint", "dim":
			st = st.Faint(true)
		case "blink":
			st = st.Blink(true)
		case "reverse":
			st = st.Reverse(true)
		case "strikethrough", "strike":
			st = st.Strikethrough(true)
		default:
			if preset, ok := semantic[w]; ok {
				st = preset(st)
				continue
			}
			key, value, found := strings.Cut(w, "=")
			if !found {
				key, value = "fg", w
			}
			c, ok := parseColor(value)
			if !ok {
				return st, errors.Newf(errors.ErrInvalidInput, "unknown style attribute %q", w).
					WithDetail("attr", attr)
			}
			switch key {
			case "fg":
				st = st.Foreground(c)
			case "bg":
				st = st.Background(c)
			default:
				return st, errors.Newf(errors.ErrInvalidInput, "unknown style attribute %q", w).
					WithDetail("attr", attr)
			}
		}
	}
	return st, nil
}

// Apply renders text with attr. Without color, or for an attribute that
// does not parse, text is returned unchanged.
func (s *Styler) Apply(attr, text string) string {
	if !s.Enabled() || text == "" {
		return text
	}
	st, err := s.Parse(attr)
	if err != nil {
		return text
	}
	return st.Render(text)
}

func parseColor(v string) (lipgloss.TerminalColor, bool) {
	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if strings.HasPrefix(v, "#") && (len(v) == 4 || len(v) == 7) {
		if _, err := strconv.ParseUint(v[1:], 16, 32); err == nil {
			return lipgloss.Color(v), true
		}
		return nil, false
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(v), true
	}
	return nil, false
}
