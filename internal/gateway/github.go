// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/takaishi/gh-stale-repos/internal/domain"
)

// RepositoryPage is one page of candidates plus its continuation state.
type RepositoryPage struct {
	Repositories []domain.Repository
	EndCursor    string
	HasNextPage  bool
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchRepositoryPage returns one page of the organization's non-archived
	// repositories, ordered ascending by last-push time. An empty cursor
	// requests the first page.
	FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error)
	// Viewer returns the login of the user the token authenticates as.
	Viewer(ctx context.Context) (string, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// orgRepositoriesQuery pages through an organization's non-archived
// repositories. The ascending PUSHED_AT order is load-bearing: the scan's
// early termination depends on it.
type orgRepositoriesQuery struct {
	Organization struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Name             string
				PushedAt         githubv4.DateTime
				DiskUsage        *githubv4.Int
				DefaultBranchRef *struct {
					Target struct {
						Commit struct {
							History struct {
								TotalCount int
								Nodes      []struct {
									CommittedDate githubv4.DateTime
									Author        struct {
										Name  string
										Email string
										User  *struct {
											Login string
										}
									}
								}
							} `graphql:"history(first: 1)"`
						} `graphql:"... on Commit"`
					}
				}
			}
		} `graphql:"repositories(first: 100, after: $cursor, isArchived: false, orderBy: {field: PUSHED_AT, direction: ASC})"`
	} `graphql:"organization(login: $org)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	if token == "" {
		return nil, fmt.Errorf("a GitHub token is required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// Viewer checks the token against the REST API before any scan traffic.
func (g *GitHubGateway) Viewer(ctx context.Context) (string, error) {
	user, _, err := g.restClient.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to look up the authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

func (g *GitHubGateway) FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error) {
	variables := map[string]interface{}{
		"org":    githubv4.String(org),
		"cursor": (*githubv4.String)(nil),
	}
	if cursor != "" {
		variables["cursor"] = githubv4.NewString(githubv4.String(cursor))
	}

	var q orgRepositoriesQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to fetch repository page for %s: %w", org, err)
	}

	page := &RepositoryPage{
		EndCursor:   string(q.Organization.Repositories.PageInfo.EndCursor),
		HasNextPage: q.Organization.Repositories.PageInfo.HasNextPage,
	}
	for _, node := range q.Organization.Repositories.Nodes {
		repo := domain.Repository{
			Name:     node.Name,
			PushedAt: node.PushedAt.Time,
		}
		if node.DiskUsage != nil {
			kb := int(*node.DiskUsage)
			repo.DiskUsage = &kb
		}
		if node.DefaultBranchRef != nil {
			history := node.DefaultBranchRef.Target.Commit.History
			repo.CommitCount = history.TotalCount
			if len(history.Nodes) > 0 {
				head := history.Nodes[0]
				name := head.Author.Name
				if name == "" && head.Author.User != nil {
					name = head.Author.User.Login
				}
				repo.LastCommit = &domain.Commit{
					Date:        head.CommittedDate.Time,
					AuthorName:  name,
					AuthorEmail: head.Author.Email,
				}
			}
		}
		page.Repositories = append(page.Repositories, repo)
	}
	g.logger.Printf("Fetched a page of %d repositories (hasNextPage=%v)", len(page.Repositories), page.HasNextPage)
	return page, nil
}
