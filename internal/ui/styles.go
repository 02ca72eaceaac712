package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss colors used for command output.

var (
	brandColor   = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("46")  // Green
	errorColor   = lipgloss.Color("196") // Red
)

// labelStyles are bound to a renderer so color support follows the writer
// they print to.
type labelStyles struct {
	result lipgloss.Style
	value  lipgloss.Style
	err    lipgloss.Style
}

func newLabelStyles(out, errOut *lipgloss.Renderer) labelStyles {
	return labelStyles{
		result: out.NewStyle().Foreground(successColor).Bold(true),
		value:  out.NewStyle().Foreground(brandColor),
		err:    errOut.NewStyle().Foreground(errorColor).Bold(true),
	}
}
