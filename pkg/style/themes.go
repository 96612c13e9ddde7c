package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors. AdaptiveColor picks the variant that suits the
// terminal background.
var (
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B8860B",
		Dark:  "#FFD54F",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8",
		Dark:  "#4DD0E1",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}
)

// namedColors maps plain color words to ANSI colors so they follow the
// user's terminal theme.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"gray":    lipgloss.Color("8"),
	"grey":    lipgloss.Color("8"),
}

// semantic attributes expand to a preset look.
var semantic = map[string]func(lipgloss.Style) lipgloss.Style{
	"error":   func(s lipgloss.Style) lipgloss.Style { return s.Foreground(ErrorColor).Bold(true) },
	"warning": func(s lipgloss.Style) lipgloss.Style { return s.Foreground(WarningColor).Bold(true) },
	"info":    func(s lipgloss.Style) lipgloss.Style { return s.Foreground(InfoColor) },
	"success": func(s lipgloss.Style) lipgloss.Style { return s.Foreground(SuccessColor).Bold(true) },
	"muted":   func(s lipgloss.Style) lipgloss.Style { return s.Foreground(MutedColor) },
	"primary": func(s lipgloss.Style) lipgloss.Style { return s.Foreground(PrimaryColor) },
	"heading": func(s lipgloss.Style) lipgloss.Style { return s.Foreground(HeadingColor).Bold(true) },
}
