// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Commit holds the metadata of a branch's most recent commit.
type Commit struct {
	Date        time.Time
	AuthorName  string
	AuthorEmail string
}

// Repository is a single candidate as returned by the data source.
type Repository struct {
	Name        string
	PushedAt    time.Time
	DiskUsage   *int // kilobytes; nil when the API omits it
	CommitCount int
	LastCommit  *Commit // nil when the default branch is absent or empty
}

// Result is one reported stale repository.
// It is the core domain entity of this application.
type Result struct {
	Name                  string `json:"name"`
	Commits               int    `json:"commits"`
	Size                  *int   `json:"size,omitempty"`
	PushedAt              string `json:"pushedAt"`
	LastCommitDate        string `json:"lastCommitDate"`
	LastCommitAuthor      string `json:"lastCommitAuthor"`
	LastCommitAuthorEmail string `json:"lastCommitAuthorEmail"`
}
