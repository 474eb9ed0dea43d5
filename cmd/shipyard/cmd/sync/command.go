// Package sync provides the sync command.
package sync

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/internal/cmd/cmdutil"
	"github.com/agentstation/shipyard/internal/cmd/output"
)

// NewCommand creates the sync command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Synchronize the ship catalog from GitHub",
		Long: `Sync walks the ships/ directory of every configured repository and
rebuilds the ship catalog from scratch.

Folders without a ship.yaml, or whose files cannot be fetched, are skipped
and reported. When GitHub rate limits the anonymous requests the command
prints a warning and exits with a non-zero status.

With --watch the catalog is refreshed every auto_update_interval until the
command is interrupted.`,
		Example: `  shipyard sync                 # Run one pass and print the summary
  shipyard sync -o json         # Print the pass result as JSON
  shipyard sync --watch         # Keep refreshing until interrupted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			result := client.Sync(ctx)
			if err := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), app, result); err != nil {
				return err
			}

			if !watch {
				if result.RateLimited {
					return cmdutil.ErrRateLimited
				}
				return nil
			}

			client.OnSyncFinished(func(r *shipyard.Result) {
				if err := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), app, r); err != nil {
					app.Logger().Warn().Err(err).Msg("Failed to report sync result")
				}
			})
			if err := client.AutoUpdatesOn(); err != nil {
				return err
			}
			app.Logger().Info().Msg("Watching for catalog changes, press Ctrl+C to stop")

			<-ctx.Done()
			return client.AutoUpdatesOff()
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing the catalog until interrupted")

	return cmd
}

// report prints r to stdout in the configured format. The rate limit
// warning always goes to stderr as text.
func report(stdout, stderr io.Writer, app appcontext.Interface, r *shipyard.Result) error {
	notices := cmdutil.NoticeWriter(stderr, app)
	if r.RateLimited {
		if err := notices.Write(alerts.RateLimited()); err != nil {
			return err
		}
	}

	format := output.DetectFormat(app.OutputFormat())
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(stdout, output.NewResultView(r))
	}

	return alerts.NewWriter(stdout, output.FormatTable, app.NoColor()).Write(alerts.ForResult(r, !app.Quiet()))
}
