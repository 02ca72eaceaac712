package main

import (
	"fmt"

	"calc/internal/calculator"

	"github.com/spf13/cobra"
)

func newOperationCmd(op calculator.Operation) *cobra.Command {
	return &cobra.Command{
		Use:     op.String() + " <a> <b>",
		Short:   fmt.Sprintf("Compute %s", op.Formula()),
		Long:    operationLong(op),
		Example: fmt.Sprintf("  calc %s 5 3", op),
		Args:    operandArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, args)
		},
	}
}

func operationLong(op calculator.Operation) string {
	switch op {
	case calculator.OpDivide:
		return "Divide a by b. Dividing by zero is an error."
	case calculator.OpPower:
		return `Raise the base a to the exponent b.
A negative base with a non-integer exponent has no real result and is an error.`
	default:
		return fmt.Sprintf("Compute %s for the two numbers a and b.", op.Formula())
	}
}

func runOperation(cmd *cobra.Command, op calculator.Operation, args []string) error {
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	out, err := current.evaluator.Evaluate(cmd.Context(), op.String(), a, b)
	if err != nil {
		return err
	}
	return current.printer.Result(out.Display)
}
