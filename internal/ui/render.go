package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// RenderMarkdown renders text through glamour wrapped at width. Styled output
// picks a theme from the terminal background; otherwise the plain notty
// theme is used without any escape sequences.
func RenderMarkdown(text string, width int, styled bool) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle("notty"),
		glamour.WithColorProfile(termenv.Ascii),
	}
	if styled {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	opts = append(opts, glamour.WithWordWrap(width))

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
