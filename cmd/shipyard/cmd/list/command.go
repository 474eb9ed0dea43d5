// Package list provides the list command.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/cmdutil"
	"github.com/agentstation/shipyard/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.FilterFlags

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List ships in the catalog",
		Aliases: []string{"ls"},
		Long: `List synchronizes the catalog and prints every ship in it.

The # column is the ship's catalog index; show and download accept it in
place of the ship's name.`,
		Example: `  shipyard list                       # List all ships
  shipyard list --search carrier      # Ships whose name or tags mention carrier
  shipyard list --author max -o json  # Ships by one author, as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, _, err := cmdutil.SyncCatalog(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			views := output.ShipViews(cat, flags.Apply(cat))

			format := output.DetectFormat(app.OutputFormat())
			var data any = views
			if format == output.FormatTable {
				data = output.ShipsToTableData(views)
			}

			if !app.Quiet() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Found %d ships\n", len(views))
			}

			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	flags = cmdutil.AddFilterFlags(cmd)

	return cmd
}
