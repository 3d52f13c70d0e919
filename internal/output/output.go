// Package output renders scan results as a table, JSON, or CSV.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/takaishi/gh-stale-repos/internal/domain"
)

var repoName = color.New(color.FgCyan, color.Bold)

// hasSize reports whether any result carries a disk-usage figure; the size
// column is only rendered when at least one does.
func hasSize(results []domain.Result) bool {
	for _, r := range results {
		if r.Size != nil {
			return true
		}
	}
	return false
}

// WriteTable writes an aligned table of results to w, with the repository
// name highlighted.
func WriteTable(w io.Writer, results []domain.Result) error {
	withSize := hasSize(results)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	headers := []string{"Repo", "Commits"}
	if withSize {
		headers = append(headers, "Size")
	}
	headers = append(headers, "Last Updated", "Last Commit", "Author", "Email")
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range results {
		row := []string{repoName.Sprint(r.Name), strconv.Itoa(r.Commits)}
		if withSize {
			size := "-"
			if r.Size != nil {
				size = fmt.Sprintf("%d kB", *r.Size)
			}
			row = append(row, size)
		}
		row = append(row, r.PushedAt, r.LastCommitDate, r.LastCommitAuthor, r.LastCommitAuthorEmail)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteJSON writes the results as a pretty-printed JSON array to w.
func WriteJSON(w io.Writer, results []domain.Result) error {
	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// WriteCSV writes the results as comma-joined lines to w. Fields are assumed
// comma-free, so no quoting is applied.
func WriteCSV(w io.Writer, results []domain.Result) error {
	withSize := hasSize(results)

	header := "Repo,Commits,Last Updated,Last Commit,Author,Author Email"
	if withSize {
		header = "Repo,Commits,Size in kB,Last Updated,Last Commit,Author,Author Email"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	for _, r := range results {
		fields := []string{r.Name, strconv.Itoa(r.Commits)}
		if withSize {
			size := ""
			if r.Size != nil {
				size = strconv.Itoa(*r.Size)
			}
			fields = append(fields, size)
		}
		fields = append(fields, r.PushedAt, r.LastCommitDate, r.LastCommitAuthor, r.LastCommitAuthorEmail)
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	return nil
}
