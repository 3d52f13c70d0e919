// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/takaishi/gh-stale-repos/internal/config"
	"github.com/takaishi/gh-stale-repos/internal/domain"
	"github.com/takaishi/gh-stale-repos/internal/gateway"
	"github.com/takaishi/gh-stale-repos/internal/ignore"
	"github.com/takaishi/gh-stale-repos/internal/output"
	"github.com/takaishi/gh-stale-repos/internal/usecase"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scans an organization for stale, low-activity repositories",
	Long: `Scans all non-archived repositories of a GitHub organization and reports
the ones that have not been pushed to in --stale-days days and whose default
branch has fewer than --commit-threshold commits.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		cfg := config.FromEnvironment()
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose || cfg.DebugMode {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		// Get other flags. The token flag wins over the environment.
		org, _ := cmd.Flags().GetString("org")
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = cfg.GitHubToken
		}
		if token == "" {
			fmt.Fprintln(os.Stderr, "Error: a GitHub token is required; pass --token or set GITHUB_TOKEN.")
			os.Exit(1)
		}
		threshold, _ := cmd.Flags().GetInt("commit-threshold")
		staleDays, _ := cmd.Flags().GetInt("stale-days")
		ignorePath, _ := cmd.Flags().GetString("ignore")
		asJSON, _ := cmd.Flags().GetBool("json")
		csvPath, _ := cmd.Flags().GetString("csv")
		showSummary, _ := cmd.Flags().GetBool("summary")

		// The ignore list is read once, fully, before any scanning starts.
		ignored, err := ignore.Load(ignorePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		login, err := githubGateway.Viewer(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: token rejected by GitHub: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Authenticated as %s", login)

		scanner := usecase.NewScanner(githubGateway, logger)
		results, err := scanner.Scan(ctx, usecase.Params{
			Org:             org,
			CommitThreshold: threshold,
			StaleDays:       staleDays,
		}, ignored)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to scan %s: %v\n", org, err)
			os.Exit(1)
		}

		if len(results) == 0 {
			fmt.Printf("No stale repositories found in %s.\n", org)
			return
		}

		switch {
		case asJSON:
			err = output.WriteJSON(os.Stdout, results)
		case csvPath != "":
			err = writeCSVFile(csvPath, results)
			if err == nil {
				fmt.Printf("Wrote %d results to %s\n", len(results), csvPath)
			}
		default:
			err = output.WriteTable(os.Stdout, results)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render results: %v\n", err)
			os.Exit(1)
		}

		if showSummary {
			summary, err := usecase.Summarize(results)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to summarize results: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "%d stale repositories; commits mean %.1f, median %.1f; oldest push %s\n",
				summary.Count, summary.MeanCommits, summary.MedianCommits, summary.OldestPush)
		}
	},
}

// writeCSVFile renders the results as CSV into a freshly created file.
func writeCSVFile(path string, results []domain.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := output.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("org", "o", "", "Target GitHub organization name (required)")
	scanCmd.MarkFlagRequired("org")
	scanCmd.Flags().StringP("token", "t", "", "GitHub API token (defaults to the GITHUB_TOKEN environment variable)")
	scanCmd.Flags().IntP("commit-threshold", "c", 20, "Repositories with fewer commits than this count as low-activity")
	scanCmd.Flags().IntP("stale-days", "d", 180, "Days without a push before a repository counts as stale")
	scanCmd.Flags().StringP("ignore", "i", "", "Path to a newline-delimited list of repository names to skip")
	scanCmd.Flags().Bool("json", false, "Emit results as JSON instead of a table")
	scanCmd.Flags().String("csv", "", "Write results as CSV to the given file")
	scanCmd.Flags().Bool("summary", false, "Print summary statistics to stderr")
}
