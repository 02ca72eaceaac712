package main

import (
	"fmt"
	"strings"

	"calc/internal/calculator"

	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the supported operations",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return current.printer.Markdown(operationsMarkdown(), 80)
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}

func operationsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Operations\n\n")
	sb.WriteString("| Operation | Result | Example |\n")
	sb.WriteString("|---|---|---|\n")
	for _, op := range calculator.Operations() {
		fmt.Fprintf(&sb, "| %s | `%s` | `calc %s 5 3` |\n", op, op.Formula(), op)
	}
	sb.WriteString("\nWhole-number results print without a fractional part.\n")
	return sb.String()
}
