package topics

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/msgkit/pkg/logging"
)

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a style file
	Width int    // 0 keeps glamour's default wrapping
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output, falling back to the raw
// content on any error.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	logger := logging.GetLogger("topics")
	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Glamour unavailable, using plain text")
		return content
	}

	rendered, err := tr.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Markdown rendering failed")
		return content
	}
	return rendered
}
