package main

import (
	"errors"
	"fmt"
	"strings"

	"calc/internal/calculator"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// usageError marks a malformed command line. It maps to exit code 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func isUsageError(err error) bool {
	var uerr *usageError
	return errors.As(err, &uerr) ||
		errors.Is(err, calculator.ErrUnknownOperation) ||
		errors.Is(err, calculator.ErrInvalidNumber)
}

// operandArgs requires exactly two tokens that parse as numbers.
func operandArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return usageErrorf("%s expects exactly 2 numbers, got %d", cmd.Name(), len(args))
	}
	for _, arg := range args {
		if _, err := calculator.ParseOperand(arg); err != nil {
			return &usageError{err: err}
		}
	}
	return nil
}

// parseOperands converts args already checked by operandArgs.
func parseOperands(args []string) (float64, float64, error) {
	a, err := calculator.ParseOperand(args[0])
	if err != nil {
		return 0, 0, &usageError{err: err}
	}
	b, err := calculator.ParseOperand(args[1])
	if err != nil {
		return 0, 0, &usageError{err: err}
	}
	return a, b, nil
}

// separateOperands moves negative numbers behind a "--" terminator so the
// flag parser does not mistake "-5" for a shorthand flag. Flags that follow
// the first negative number are kept in front of the terminator. A command
// line that already contains "--" is returned unchanged.
func separateOperands(args []string, flags *pflag.FlagSet) []string {
	var head, trailingFlags, positional []string
	split := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if !split {
				return args
			}
			positional = append(positional, args[i+1:]...)
			break
		}

		if !split && !isNegativeNumber(arg) {
			head = append(head, arg)
			if takesValue(arg, flags) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
			continue
		}
		split = true

		if isNegativeNumber(arg) || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}
		trailingFlags = append(trailingFlags, arg)
		if takesValue(arg, flags) && i+1 < len(args) {
			i++
			trailingFlags = append(trailingFlags, args[i])
		}
	}

	if !split {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, head...)
	out = append(out, trailingFlags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := calculator.ParseOperand(arg)
	return err == nil
}

// takesValue reports whether arg is a flag whose value is the next token.
func takesValue(arg string, flags *pflag.FlagSet) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		if strings.Contains(arg, "=") {
			return false
		}
		f = flags.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		f = flags.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}
