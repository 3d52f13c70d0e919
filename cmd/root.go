// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gh-stale-repos",
	Short: "A CLI tool to find stale, low-activity repositories in a GitHub organization.",
	Long: `gh-stale-repos scans a GitHub organization for repositories that have not
been pushed to within a configurable number of days and whose default branch
carries fewer commits than a configurable threshold. Results can be rendered
as a table, JSON, or CSV.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
