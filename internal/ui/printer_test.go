package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_PlainWhenNotATerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, ColorAuto)

	assert.False(t, p.Styled())
	require.NoError(t, p.Result("42"))
	p.Error(errors.New("cannot divide by zero"))

	assert.Equal(t, "Result: 42\n", out.String())
	assert.Equal(t, "Error: cannot divide by zero\n", errOut.String())
}

func TestPrinter_Never(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, ColorNever)

	require.NoError(t, p.Result("0.25"))
	assert.Equal(t, "Result: 0.25\n", out.String())
}

func TestPrinter_Always(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, ColorAlways)

	assert.True(t, p.Styled())
	require.NoError(t, p.Result("5"))
	p.Error(errors.New("boom"))

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Result:")
	assert.Contains(t, out.String(), "5")
	// Red, 38;5;196
	assert.Contains(t, errOut.String(), "196")
	assert.Contains(t, errOut.String(), "boom")
}

func TestPrinter_Hint(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, ColorAlways)

	p.Hint("Run '%s --help' for usage.", "calc")
	assert.Equal(t, "Run 'calc --help' for usage.\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestPrinter_Markdown(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, ColorNever)

	require.NoError(t, p.Markdown("# Operations\n\n- add\n- power\n", 80))
	assert.Contains(t, out.String(), "Operations")
	assert.Contains(t, out.String(), "add")
	assert.Contains(t, out.String(), "power")
	assert.Empty(t, errOut.String())
}
