package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/cmd/shipyard/cmd/download"
	"github.com/agentstation/shipyard/cmd/shipyard/cmd/list"
	"github.com/agentstation/shipyard/cmd/shipyard/cmd/readme"
	"github.com/agentstation/shipyard/cmd/shipyard/cmd/show"
	"github.com/agentstation/shipyard/cmd/shipyard/cmd/sync"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(sync.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(download.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(readme.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("shipyard %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
