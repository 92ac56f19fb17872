package app

import (
	"fmt"

	logginghelper "github.com/Egor213/LogLens/internal/controller/common/logging"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	"github.com/spf13/cobra"
)

const defaultEntriesLimit = 1000

func newIngestCommand(opts *rootOptions) *cobra.Command {
	var sessions []string

	cmd := &cobra.Command{
		Use:   "ingest <dir|url>",
		Short: "Ingest the test sessions of a directory or HTTP listing",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withContainer(func(cmd *cobra.Command, args []string, c *container) error {
			src, err := c.openSource(args[0])
			if err != nil {
				return err
			}

			logginghelper.LogIngestStarted(src.Path(), sessions)
			report, err := c.services.Ingest.Ingest(cmd.Context(), src, sessions)
			if err != nil {
				logginghelper.LogIngestError(src.Path(), err)
				return err
			}

			printReport(cmd.OutOrStdout(), report)

			failed := 0
			for _, res := range report.Sessions {
				if res.Status == domain.SessionFailed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d sessions could not be stored", failed)
			}
			return nil
		}),
	}
	cmd.Flags().StringArrayVar(&sessions, "session", nil, "ingest only this session key (repeatable)")

	return cmd
}

func newScanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir|url>",
		Short: "List the test sessions of a source and whether they are loaded",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withContainer(func(cmd *cobra.Command, args []string, c *container) error {
			src, err := c.openSource(args[0])
			if err != nil {
				return err
			}

			candidates, err := c.services.Ingest.Scan(cmd.Context(), src)
			if err != nil {
				return err
			}

			printCandidates(cmd.OutOrStdout(), candidates)
			return nil
		}),
	}
}

func newSessionsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored test sessions",
		Args:  cobra.NoArgs,
		RunE: opts.withContainer(func(cmd *cobra.Command, _ []string, c *container) error {
			sessions, err := c.services.Query.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			printSessions(cmd.OutOrStdout(), sessions)
			return nil
		}),
	}
}

func newEntriesCommand(opts *rootOptions) *cobra.Command {
	var filter repotypes.EntryFilter

	cmd := &cobra.Command{
		Use:   "entries <session-id>",
		Short: "Print the log entries of a stored session in order",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withContainer(func(cmd *cobra.Command, args []string, c *container) error {
			filter.SessionID = args[0]

			page, err := c.services.Query.GetEntries(cmd.Context(), filter)
			if err != nil {
				return err
			}

			printEntries(cmd.OutOrStdout(), page)
			return nil
		}),
	}
	cmd.Flags().StringArrayVar(&filter.Levels, "level", nil, "only entries of this level (repeatable)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "only entries whose message or stack contains this text")
	cmd.Flags().BoolVar(&filter.FailuresOnly, "failures", false, "only failure markers")
	cmd.Flags().IntVar(&filter.Limit, "limit", defaultEntriesLimit, "maximum entries to print")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "entries to skip")

	return cmd
}
