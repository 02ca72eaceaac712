package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// runCLI executes args the way main does and captures both streams.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	originalLogger := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(originalLogger)
		viper.Reset()
	})

	resetFlags(rootCmd)
	viper.Reset()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
