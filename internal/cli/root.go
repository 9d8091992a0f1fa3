// Package cli implements the vippet command line: list pipelines, inspect their config, evaluate them.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/askiada/go-pipeline-loader/pipelines"
	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// RootEnv overrides the default pipelines root.
const RootEnv = "PIPELINES_ROOT"

type options struct {
	logger  *slog.Logger
	root    string
	verbose bool
}

func (o *options) loader(registry *loader.Registry) *loader.Loader {
	return loader.New(registry, loader.WithRoot(o.root), loader.WithLogger(o.logger))
}

func Run() ExitCode {
	registry, err := pipelines.NewRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return exitCodeError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(registry).ExecuteContext(ctx); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

// NewRootCmd creates the vippet command resolving pipelines through registry.
func NewRootCmd(registry *loader.Registry) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "vippet",
		Short:        "Discover, inspect and evaluate media pipelines.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().StringVarP(&opts.root, "root", "r", defaultRoot(), "pipelines root directory (env "+RootEnv+")")

	rootCmd.AddCommand(
		newListCmd(opts, registry),
		newConfigCmd(opts, registry),
		newEvaluateCmd(opts, registry),
		newValidateCmd(opts, registry),
	)

	return rootCmd
}

func defaultRoot() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}

	return loader.DefaultRoot
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
