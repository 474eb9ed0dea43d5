// Package readme provides the readme command.
package readme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/internal/cmd/cmdutil"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/readme"
)

// NewCommand creates the readme command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "readme <ships-dir|ship.yaml>",
		GroupID: "management",
		Short:   "Generate readme.md files for local ship folders",
		Long: `Readme writes a readme.md next to every ship.yaml found one level below
the given directory, replacing any existing readme.md.

Pass a ship.yaml file instead to generate a single readme. The readme links
the last .png or .jpg in the folder as the preview image.`,
		Example: `  shipyard readme ./ships                  # Every ships/<folder>/ship.yaml
  shipyard readme ./ships/zephyr/ship.yaml # One ship`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := generate(args[0])

			aw := cmdutil.NoticeWriter(cmd.OutOrStdout(), app)
			for _, path := range written {
				if werr := aw.Write(alerts.NewSuccess("Wrote " + path)); werr != nil {
					return werr
				}
			}
			if err == nil && len(written) == 0 {
				return aw.Write(alerts.NewInfo(fmt.Sprintf("No %s found under %s", constants.MetadataFileName, args[0])))
			}
			return err
		},
	}
}

func generate(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.WrapIO("stat", target, err)
	}

	if info.IsDir() {
		return readme.GenerateAll(target)
	}

	if filepath.Base(target) != constants.MetadataFileName {
		return nil, errors.NewValidationError("target", target, "must be a directory or a "+constants.MetadataFileName)
	}
	path, err := readme.Generate(target)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
