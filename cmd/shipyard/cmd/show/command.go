// Package show provides the show command.
package show

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/internal/cmd/cmdutil"
	"github.com/agentstation/shipyard/internal/cmd/output"
	"github.com/agentstation/shipyard/pkg/ships"
)

// NewCommand creates the show command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show [name|index]",
		GroupID: "core",
		Short:   "Show the details of one ship",
		Long: `Show synchronizes the catalog and prints one ship's details: its name,
tags, description, author, version, and the game version it was made for.

The ship is looked up by name, ignoring case, and then by catalog index.
Run without an argument in a terminal to pick the ship from a list.`,
		Example: `  shipyard show Zephyr     # Look up by name
  shipyard show 0          # Look up by catalog index`,
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

			format := output.DetectFormat(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				view := output.ShipViews(cat, []*ships.Ship{ship})[0]
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), view)
			}

			return printDetails(cmd.OutOrStdout(), app, ship)
		},
	}
}

// printDetails writes the display text with the tag line highlighted,
// followed by a line describing the preview image.
func printDetails(w io.Writer, app appcontext.Interface, ship *ships.Ship) error {
	aw := alerts.NewWriter(w, output.FormatTable, app.NoColor())

	text := ships.DisplayText(ship)
	if parts := strings.SplitN(text, "\n\n", 3); len(parts) == 3 {
		parts[1] = aw.Render(aw.Style().Foreground(alerts.Accent), parts[1])
		text = strings.Join(parts, "\n\n")
	}

	image := "Image: none"
	if img := ship.Image(); img.Present() {
		image = fmt.Sprintf("Image: %s (%d bytes)", img.Name(), img.Size())
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", text, image)
	return err
}
