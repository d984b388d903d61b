package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anivratgoel/carepal-id-bre/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bre",
		Short:   "Bureau report rule evaluation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newSevereCommand())
	rootCmd.AddCommand(newConvertCommand())

	return rootCmd
}
