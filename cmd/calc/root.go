package main

import (
	"context"
	"io"
	"os"

	"calc/internal/calculator"
	"calc/internal/config"
	"calc/internal/telemetry"
	"calc/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var exit = os.Exit

// session holds what a single invocation needs once configuration is loaded.
type session struct {
	settings  config.Settings
	printer   *ui.Printer
	metrics   *telemetry.Metrics
	evaluator *calculator.Evaluator
	closeLog  func() error
}

var current *session

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calc <operation> <a> <b>",
	Short: "A simple command-line calculator.",
	Long: `A simple command-line calculator.

Applies one of add, subtract, multiply, divide or power to two numbers.
For power the first number is the base and the second the exponent.`,
	Example:           "  calc add 5 3\n  calc power 2 10\n  calc subtract -5 3",
	Args:              rootArgs,
	RunE:              runRoot,
	PersistentPreRunE: setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// Execute runs the command line from os.Args and exits with its status.
// This is called by main.main().
func Execute() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes args against rootCmd and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	current = nil

	argv := separateOperands(args, rootCmd.PersistentFlags())
	if argv == nil {
		// cobra falls back to os.Args on nil
		argv = []string{}
	}
	rootCmd.SetArgs(argv)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	flushMetrics()
	closeLogFile()
	if err == nil {
		return exitOK
	}

	printer := ui.NewPrinter(stdout, stderr, viper.GetString(config.KeyColor))
	if current != nil {
		printer = current.printer
	}
	printer.Error(err)

	if calculator.IsArithmetic(err) {
		return exitFailure
	}
	if isUsageError(err) {
		printer.Hint("Run '%s --help' for usage.", rootCmd.Name())
		return exitUsage
	}
	return exitFailure
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging on stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	rootCmd.PersistentFlags().String("color", ui.ColorAuto, "Colorize output: auto, always or never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	for _, op := range calculator.Operations() {
		rootCmd.AddCommand(newOperationCmd(op))
	}
}

// initConfig loads the environment and binds flags on every execution, so a
// viper.Reset between runs does not lose the bindings.
func initConfig() {
	config.Load()

	flags := rootCmd.PersistentFlags()
	viper.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
	viper.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	viper.BindPFlag(config.KeyMetricsFile, flags.Lookup("metrics-file"))
	viper.BindPFlag(config.KeyColor, flags.Lookup("color"))
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.ValidateConfig(); err != nil {
		return &usageError{err: err}
	}

	settings := config.Current()
	closeLog := telemetry.InitLogger(settings.Verbose, settings.LogFile)

	metrics := telemetry.NewMetrics()
	current = &session{
		settings:  settings,
		printer:   ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.Color),
		metrics:   metrics,
		evaluator: calculator.NewEvaluator(calculator.WithRecorder(metrics)),
		closeLog:  closeLog,
	}

	telemetry.LogDebug("Configuration loaded",
		"command", cmd.Name(),
		"color", settings.Color,
		"metrics_file", settings.MetricsFile,
	)
	return nil
}

// flushMetrics writes the textfile if one was requested. A failure is
// logged and does not change the exit code.
func flushMetrics() {
	if current == nil || current.settings.MetricsFile == "" {
		return
	}
	if err := current.metrics.WriteTextfile(current.settings.MetricsFile); err != nil {
		telemetry.LogError("Failed to write metrics", err)
	}
}

func closeLogFile() {
	if current == nil {
		return
	}
	if err := current.closeLog(); err != nil {
		telemetry.LogError("Failed to close log file", err)
	}
}

// rootArgs rejects anything that is not one of the operation subcommands.
func rootArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if _, err := calculator.ParseOperation(args[0]); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func runRoot(_ *cobra.Command, _ []string) error {
	return usageErrorf("the following arguments are required: operation, numbers")
}
