// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/takaishi/gh-stale-repos/internal/domain"
	"github.com/takaishi/gh-stale-repos/internal/gateway"
	"github.com/takaishi/gh-stale-repos/internal/ignore"
)

const dateLayout = "2006-01-02"

// unknownAuthor is reported when a repository has no commit history to
// attribute.
const unknownAuthor = "unknown"

// Params are the inputs for one scan, fixed for the run's duration.
type Params struct {
	Org             string
	CommitThreshold int
	StaleDays       int
}

// Scanner is the use case that walks an organization's repositories and
// collects the ones that are both stale and low-activity.
type Scanner struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	now     func() time.Time
}

// NewScanner creates a new Scanner instance.
func NewScanner(fetcher gateway.Fetcher, logger *log.Logger) *Scanner {
	return &Scanner{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Scan performs the main business logic: it pages through the organization's
// repositories and keeps every one last pushed before now-StaleDays whose
// default branch has fewer than CommitThreshold commits, skipping names in
// the ignore set.
//
// The data source returns candidates in ascending pushed-at order, so the
// first non-ignored candidate at or past the cutoff ends the scan: every
// remaining candidate is at least as fresh. The ignore check runs first on
// purpose; an ignored-but-fresh repository must not cut the scan short.
func (s *Scanner) Scan(ctx context.Context, params Params, ignored ignore.Set) ([]domain.Result, error) {
	cutoff := s.now().AddDate(0, 0, -params.StaleDays)
	s.logger.Printf("Scanning %s for repositories last pushed before %s...", params.Org, cutoff.Format(dateLayout))

	var results []domain.Result
	cursor := ""
	for {
		page, err := s.fetcher.FetchRepositoryPage(ctx, params.Org, cursor)
		if err != nil {
			return nil, err
		}

		for _, repo := range page.Repositories {
			if ignored.Contains(repo.Name) {
				s.logger.Printf("  Skipping ignored repository %s", repo.Name)
				continue
			}
			if !repo.PushedAt.Before(cutoff) {
				s.logger.Printf("  %s was pushed recently; stopping the scan", repo.Name)
				return results, nil
			}
			if repo.CommitCount < params.CommitThreshold {
				results = append(results, shapeResult(repo))
			}
		}

		if !page.HasNextPage || page.EndCursor == "" {
			break
		}
		cursor = page.EndCursor
		s.logger.Println("  Fetching next page of repositories...")
	}

	s.logger.Printf("Scan complete: %d stale repositories found.", len(results))
	return results, nil
}

// shapeResult builds the reported record for a repository that passed both
// filters. Repositories without commit history fall back to the push date
// and an unknown author.
func shapeResult(repo domain.Repository) domain.Result {
	result := domain.Result{
		Name:                  repo.Name,
		Commits:               repo.CommitCount,
		Size:                  repo.DiskUsage,
		PushedAt:              repo.PushedAt.Format(dateLayout),
		LastCommitDate:        repo.PushedAt.Format(dateLayout),
		LastCommitAuthor:      unknownAuthor,
		LastCommitAuthorEmail: unknownAuthor,
	}
	if repo.LastCommit != nil {
		result.LastCommitDate = repo.LastCommit.Date.Format(dateLayout)
		if repo.LastCommit.AuthorName != "" {
			result.LastCommitAuthor = repo.LastCommit.AuthorName
		}
		if repo.LastCommit.AuthorEmail != "" {
			result.LastCommitAuthorEmail = repo.LastCommit.AuthorEmail
		}
	}
	return result
}

// Summary aggregates whole-run statistics over a result set.
type Summary struct {
	Count         int
	MeanCommits   float64
	MedianCommits float64
	OldestPush    string
}

// Summarize computes summary statistics for a non-empty result set.
func Summarize(results []domain.Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, fmt.Errorf("no results to summarize")
	}

	commits := make([]float64, len(results))
	oldest := results[0].PushedAt
	for i, result := range results {
		commits[i] = float64(result.Commits)
		// Dates are yyyy-MM-dd strings, so lexical order is date order.
		if result.PushedAt < oldest {
			oldest = result.PushedAt
		}
	}

	mean, err := stats.Mean(commits)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean commit count: %w", err)
	}
	median, err := stats.Median(commits)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute median commit count: %w", err)
	}

	return Summary{
		Count:         len(results),
		MeanCommits:   mean,
		MedianCommits: median,
		OldestPush:    oldest,
	}, nil
}
