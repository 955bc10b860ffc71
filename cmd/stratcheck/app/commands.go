package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eridu-basin/stratcheck/cmd/stratcheck/cmd/check"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateCheckCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateCheckCommand creates the check command with app dependencies.
func (a *App) CreateCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// CreateVersionCommand creates the version command.
// Build details are printed with --verbose.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stratcheck %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
