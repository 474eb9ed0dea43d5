// Package download provides the download command.
package download

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/internal/cmd/cmdutil"
)

// NewCommand creates the download command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:     "download [name|index]",
		GroupID: "core",
		Short:   "Download a ship into the downloads directory",
		Long: `Download synchronizes the catalog and copies every file of one ship
folder into a new directory under the downloads directory.

The new directory is named after the remote folder. If that name is taken,
(1), (2) and so on are appended. Existing files are never overwritten.

Run without an argument in a terminal to pick the ship from a list.`,
		Example: `  shipyard download Zephyr                  # Into downloads_directory
  shipyard download 3 --dest ~/ships        # Into a custom directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := cmdutil.SyncCatalog(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ship, err := cmdutil.PickShip(cat, args, cmdutil.Interactive())
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if dest == "" {
				dest = app.DownloadsDirectory()
			}

			path, err := client.Materialize(cmd.Context(), ship, dest)
			if err != nil {
				return err
			}

			aw := cmdutil.NoticeWriter(cmd.OutOrStdout(), app)
			if path == "" {
				return aw.Write(alerts.NewWarning(fmt.Sprintf("%s has no files to download", ship.Name())))
			}
			return aw.Write(alerts.NewSuccess(fmt.Sprintf("Downloaded %s to %s", ship.Name(), path)))
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "destination directory (default is downloads_directory)")

	return cmd
}
