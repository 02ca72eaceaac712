package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationsMarkdown(t *testing.T) {
	md := operationsMarkdown()

	assert.Contains(t, md, "| add | `a + b` | `calc add 5 3` |")
	assert.Contains(t, md, "| power | `a ** b` | `calc power 5 3` |")
}

func TestOperationsCmd(t *testing.T) {
	res := runCLI(t, "operations")
	assert.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Empty(t, res.stderr)

	for _, want := range []string{"Operations", "add", "subtract", "multiply", "divide", "power", "a ** b"} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestOperationsCmd_RejectsArgs(t *testing.T) {
	res := runCLI(t, "operations", "extra")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, `unknown command "extra"`)
	assert.Empty(t, res.stdout)
}
