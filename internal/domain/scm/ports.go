package scm

import (
	"context"
	"time"
)

// Commit is a single commit exposing its message.
type Commit struct {
	SHA     string
	Message string
}

// PullRequest is a closed pull request as reported by the hosting service.
// MergedAt is nil for pull requests closed without merging.
type PullRequest struct {
	Number   int
	Title    string
	MergedAt *time.Time
	Labels   []string
}

// Merged reports whether the pull request was merged rather than just closed.
func (p PullRequest) Merged() bool {
	return p.MergedAt != nil
}

// CommitSource lists the most recent commits of a repository's default
// branch, newest first, bounded to limit.
type CommitSource interface {
	RecentCommits(ctx context.Context, repo Repository, limit int) ([]Commit, error)
}

// ReleaseSource exposes the newest release tag of a repository. An empty tag
// with a nil error means the repository has no releases yet; an error means
// the fetch failed.
type ReleaseSource interface {
	LatestReleaseTag(ctx context.Context, repo Repository) (string, error)
}

// PullRequestSource returns one page of closed pull requests against the
// configured base branch, ordered by most-recent-update descending. Page
// numbering starts at 1; a page shorter than perPage is the last page.
type PullRequestSource interface {
	ClosedPullRequests(ctx context.Context, repo Repository, page, perPage int) ([]PullRequest, error)
}

// Sources bundles the three collaborator ports a run needs.
type Sources interface {
	CommitSource
	ReleaseSource
	PullRequestSource
}
