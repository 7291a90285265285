package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shell",
	Short: "Compliance Management System web shell",
	Long: `shell serves the Compliance Management System web shell: the navigation
bar, the placeholder views and the current user's profile read.

Available commands:
  serve      Start the HTTP server
  routes     List the shell's routes
  version    Print the version

Use "shell [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
