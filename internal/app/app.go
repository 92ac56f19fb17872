// Package app wires the loglens command line: configuration, storage,
// services and the ingest, query, serve and watch commands.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "loglens",
		Short:        "Ingest HTML test logs into searchable test sessions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $APP_CONFIG_PATH or config.yaml)")

	root.AddCommand(
		newIngestCommand(opts),
		newScanCommand(opts),
		newSessionsCommand(opts),
		newEntriesCommand(opts),
		newServeCommand(opts),
		newWatchCommand(opts),
	)

	return root
}

type runFunc func(cmd *cobra.Command, args []string, c *container) error

// withContainer bootstraps the application around fn and closes it after.
func (o *rootOptions) withContainer(fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := bootstrap(o.configPath)
		if err != nil {
			return err
		}
		defer c.Close()

		return fn(cmd, args, c)
	}
}
