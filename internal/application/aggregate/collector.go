// Package aggregate implements the fleet version aggregation run: priority
// override detection, per-service signal collection and combination, the
// fleet-level fold, and state persistence.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	fverrors "github.com/fleetver-tech/fleetver/internal/errors"

	"github.com/fleetver-tech/fleetver/internal/domain/scm"
)

// Collector gathers the label names of pull requests merged after the
// anchor, one page at a time.
type Collector struct {
	prs      scm.PullRequestSource
	pageSize int
	logger   *slog.Logger
}

// NewCollector creates a Collector scanning pages of the given size.
func NewCollector(prs scm.PullRequestSource, pageSize int) *Collector {
	return &Collector{
		prs:      prs,
		pageSize: pageSize,
		logger:   slog.Default().With("component", "pr_collector"),
	}
}

// Collect returns the deduplicated label names of every pull request merged
// after the anchor, preserving first-seen order.
//
// Pages are ordered by most-recent-update descending; scanning stops at the
// first pull request in page order whose merge time is at or before the
// anchor, and a page shorter than the page size is the last page. Closed
// pull requests that were never merged are discarded before label
// extraction. The update ordering is an approximation of merge ordering: a
// recently-touched old pull request ends the scan even when newer merges
// exist on later pages.
//
// A transport failure mid-scan returns the labels gathered so far together
// with a recoverable error; there is no retry.
func (c *Collector) Collect(ctx context.Context, repo scm.Repository, anchor time.Time) ([]string, error) {
	seen := make(map[string]struct{})
	var labels []string

	for page := 1; ; page++ {
		prs, err := c.prs.ClosedPullRequests(ctx, repo, page, c.pageSize)
		if err != nil {
			return labels, fverrors.NetworkWrap(err, "aggregate.Collect",
				"failed to fetch pull request page "+repo.String())
		}

		stop := false
		for _, pr := range prs {
			if !pr.Merged() {
				continue
			}
			if !pr.MergedAt.After(anchor) {
				stop = true
				break
			}
			c.logger.Debug("qualifying pull request",
				"repo", repo.String(), "number", pr.Number, "merged_at", pr.MergedAt)
			for _, label := range pr.Labels {
				if _, ok := seen[label]; ok {
					continue
				}
				seen[label] = struct{}{}
				labels = append(labels, label)
			}
		}

		if stop || len(prs) < c.pageSize {
			return labels, nil
		}
	}
}
