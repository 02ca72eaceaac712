package main

import (
	"testing"

	"calc/internal/calculator"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")
	fs.String("color", "auto", "")
	fs.StringP("log-file", "l", "", "")
	return fs
}

func TestSeparateOperands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no negatives untouched",
			args:     []string{"add", "5", "3"},
			expected: []string{"add", "5", "3"},
		},
		{
			name:     "negative first operand",
			args:     []string{"subtract", "-5", "3"},
			expected: []string{"subtract", "--", "-5", "3"},
		},
		{
			name:     "negative second operand",
			args:     []string{"subtract", "3", "-5"},
			expected: []string{"subtract", "3", "--", "-5"},
		},
		{
			name:     "leading flags stay in place",
			args:     []string{"-v", "--color", "never", "add", "-1", "2"},
			expected: []string{"-v", "--color", "never", "add", "--", "-1", "2"},
		},
		{
			name:     "trailing flags move before terminator",
			args:     []string{"add", "-1", "-2", "--color", "never", "-v"},
			expected: []string{"add", "--color", "never", "-v", "--", "-1", "-2"},
		},
		{
			name:     "flag with inline value",
			args:     []string{"add", "-1", "--color=never", "2"},
			expected: []string{"add", "--color=never", "--", "-1", "2"},
		},
		{
			name:     "shorthand flag with value",
			args:     []string{"add", "-1", "-l", "calc.log", "2"},
			expected: []string{"add", "-l", "calc.log", "--", "-1", "2"},
		},
		{
			name:     "flag value that looks negative",
			args:     []string{"--log-file", "-1", "add", "1", "2"},
			expected: []string{"--log-file", "-1", "add", "1", "2"},
		},
		{
			name:     "existing terminator untouched",
			args:     []string{"add", "--", "-1", "2"},
			expected: []string{"add", "--", "-1", "2"},
		},
		{
			name:     "terminator after negative",
			args:     []string{"add", "-1", "--", "-2"},
			expected: []string{"add", "--", "-1", "-2"},
		},
		{
			name:     "negative infinity",
			args:     []string{"add", "-inf", "1"},
			expected: []string{"add", "--", "-inf", "1"},
		},
		{
			name:     "empty",
			args:     nil,
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, separateOperands(tc.args, testFlagSet()))
		})
	}
}

func TestIsNegativeNumber(t *testing.T) {
	assert.True(t, isNegativeNumber("-5"))
	assert.True(t, isNegativeNumber("-0.5"))
	assert.True(t, isNegativeNumber("-1e3"))
	assert.False(t, isNegativeNumber("5"))
	assert.False(t, isNegativeNumber("-"))
	assert.False(t, isNegativeNumber("-v"))
	assert.False(t, isNegativeNumber("--5"))
}

func TestOperandArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}

	assert.NoError(t, operandArgs(cmd, []string{"1", "-2.5"}))

	err := operandArgs(cmd, []string{"1"})
	require.Error(t, err)
	assert.True(t, isUsageError(err))
	assert.Equal(t, "add expects exactly 2 numbers, got 1", err.Error())

	err = operandArgs(cmd, []string{"1", "x"})
	assert.ErrorIs(t, err, calculator.ErrInvalidNumber)
	assert.True(t, isUsageError(err))
}

func TestIsUsageError(t *testing.T) {
	_, divErr := calculator.Divide(1, 0)
	_, opErr := calculator.ParseOperation("nope")

	assert.True(t, isUsageError(usageErrorf("bad")))
	assert.True(t, isUsageError(opErr))
	assert.False(t, isUsageError(divErr))
	assert.False(t, isUsageError(assert.AnError))
}
