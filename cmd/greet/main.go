// cmd/greet/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/greet/di"
	"github.com/sghaida/greet/greeter"
	"github.com/sghaida/greet/internal/config"
	"github.com/sghaida/greet/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks errors caused by bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type options struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "greet [name...]",
		Short: "Print a greeting for each name",
		Long: `greet prints "Hello <name>!" for every name, one per line.

Names are taken from the arguments. Without arguments the names listed in the
config file (or GREET_NAMES) are used.

Example:
  greet "John Doe"
  greet -c greet.yaml -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(opts, args, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console or json (overrides config)")

	return cmd
}

func runGreet(opts *options, args []string, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := di.NewMapRegistry().Provide(greeter.RegistryKeyLogger, logger)
	svc, err := greeter.Build(cfg, reg)
	if err != nil {
		return fmt.Errorf("building greeter: %w", err)
	}

	names := args
	if len(names) == 0 {
		names = cfg.Names
	}
	logger.Debug("greeting", zap.Int("count", len(names)), zap.Bool("from_config", len(args) == 0))

	for _, msg := range svc.Value().GreetNames(names...) {
		if _, err := fmt.Fprintln(stdout, msg); err != nil {
			return fmt.Errorf("writing greeting: %w", err)
		}
	}
	return nil
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "greet:", err)
		var ue usageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprintln(stderr, cmd.UsageString())
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
