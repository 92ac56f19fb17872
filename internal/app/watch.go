package app

import (
	logginghelper "github.com/Egor213/LogLens/internal/controller/common/logging"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/Egor213/LogLens/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Ingest a directory and re-ingest sessions as their files change",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withContainer(func(cmd *cobra.Command, args []string, c *container) error {
			src, err := source.NewLocal(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := watcher.New(src, c.services.Ingest, c.cfg.Ingest.WatchDebounce, func(report *domain.IngestReport, err error) {
				if err != nil {
					logginghelper.LogIngestError(src.Path(), err)
					return
				}
				logginghelper.LogReport(report)
				printReport(out, report)
			})

			return w.Run(cmd.Context())
		}),
	}
}
