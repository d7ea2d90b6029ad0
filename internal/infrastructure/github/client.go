// Package github implements the scm collaborator ports against the GitHub
// REST API.
package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/fleetver-tech/fleetver/internal/domain/scm"
	fverrors "github.com/fleetver-tech/fleetver/internal/errors"
)

// Options configures the GitHub client.
type Options struct {
	// Token is the API token; unauthenticated access is used when empty.
	Token string
	// BaseURL points at a GitHub Enterprise instance when set.
	BaseURL string
	// BaseBranch is the fixed target branch pull requests are filtered to.
	BaseBranch string
}

// Client implements scm.Sources against the GitHub REST API. All calls are
// sequential and uncancelled beyond the passed context; timeout and retry
// policy belong to the injected HTTP transport.
type Client struct {
	gh         *gh.Client
	baseBranch string
}

var _ scm.Sources = (*Client)(nil)

// NewClient creates a GitHub-backed implementation of the scm ports.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var httpClient *http.Client
	if opts.Token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token},
		))
	}

	client := gh.NewClient(httpClient)
	if opts.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fverrors.ConfigWrap(err, "github.NewClient", "invalid GitHub base URL")
		}
	}

	baseBranch := opts.BaseBranch
	if baseBranch == "" {
		baseBranch = "main"
	}
	return &Client{gh: client, baseBranch: baseBranch}, nil
}

// RecentCommits returns the most recent commits of the repository's default
// branch, newest first, bounded to limit.
func (c *Client) RecentCommits(ctx context.Context, repo scm.Repository, limit int) ([]scm.Commit, error) {
	const op = "github.RecentCommits"

	commits, _, err := c.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, fverrors.NetworkWrap(err, op, "failed to list commits for "+repo.String())
	}

	out := make([]scm.Commit, 0, len(commits))
	for _, rc := range commits {
		out = append(out, scm.Commit{
			SHA:     rc.GetSHA(),
			Message: rc.GetCommit().GetMessage(),
		})
	}
	return out, nil
}

// LatestReleaseTag returns the tag name of the newest release, or "" when
// the repository has no releases.
func (c *Client) LatestReleaseTag(ctx context.Context, repo scm.Repository) (string, error) {
	const op = "github.LatestReleaseTag"

	// Releases come back newest first; only the newest tag is consumed.
	releases, _, err := c.gh.Repositories.ListReleases(ctx, repo.Owner, repo.Name, &gh.ListOptions{
		PerPage: 1,
	})
	if err != nil {
		return "", fverrors.NetworkWrap(err, op, "failed to list releases for "+repo.String())
	}
	if len(releases) == 0 {
		return "", nil
	}
	return releases[0].GetTagName(), nil
}

// ClosedPullRequests returns one page of closed pull requests against the
// configured base branch, ordered by most-recent-update descending.
func (c *Client) ClosedPullRequests(ctx context.Context, repo scm.Repository, page, perPage int) ([]scm.PullRequest, error) {
	const op = "github.ClosedPullRequests"

	prs, _, err := c.gh.PullRequests.List(ctx, repo.Owner, repo.Name, &gh.PullRequestListOptions{
		State:     "closed",
		Base:      c.baseBranch,
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	})
	if err != nil {
		return nil, fverrors.NetworkWrap(err, op, "failed to list pull requests for "+repo.String())
	}

	out := make([]scm.PullRequest, 0, len(prs))
	for _, pr := range prs {
		p := scm.PullRequest{
			Number: pr.GetNumber(),
			Title:  pr.GetTitle(),
		}
		if pr.MergedAt != nil {
			t := pr.MergedAt.Time
			p.MergedAt = &t
		}
		for _, label := range pr.Labels {
			p.Labels = append(p.Labels, label.GetName())
		}
		out = append(out, p)
	}
	return out, nil
}
