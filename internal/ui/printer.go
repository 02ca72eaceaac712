package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes understood by NewPrinter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes the labelled lines a command produces. Labels are colored
// only when the destination supports it, so piped output stays plain.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	outR   *lipgloss.Renderer
	styles labelStyles
}

// NewPrinter returns a Printer writing results to out and errors to errOut.
// mode is one of ColorAuto, ColorAlways or ColorNever; anything else is
// treated as ColorAuto.
func NewPrinter(out, errOut io.Writer, mode string) *Printer {
	outR := newRenderer(out, mode)
	errR := newRenderer(errOut, mode)
	return &Printer{
		out:    out,
		errOut: errOut,
		outR:   outR,
		styles: newLabelStyles(outR, errR),
	}
}

func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Styled reports whether output to the result writer carries ANSI styling.
func (p *Printer) Styled() bool {
	return p.outR.ColorProfile() != termenv.Ascii
}

// Result prints "Result: <display>".
func (p *Printer) Result(display string) error {
	_, err := fmt.Fprintf(p.out, "%s %s\n", p.styles.result.Render("Result:"), p.styles.value.Render(display))
	return err
}

// Error prints "Error: <message>" to the error writer.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %v\n", p.styles.err.Render("Error:"), err)
}

// Hint prints an unstyled line to the error writer.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintf(p.errOut, format+"\n", args...)
}

// Markdown renders md to the result writer.
func (p *Printer) Markdown(md string, width int) error {
	rendered, err := RenderMarkdown(md, width, p.Styled())
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, rendered)
	return err
}
