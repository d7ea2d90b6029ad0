package aggregate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/scm"
)

// OverrideDetector scans recent commit history for the priority marker that
// forces an unconditional fleet-wide major bump.
type OverrideDetector struct {
	commits scm.CommitSource
	marker  string
	window  int
	logger  *slog.Logger
}

// NewOverrideDetector creates an OverrideDetector matching marker
// case-insensitively in the most recent window commits of each service.
func NewOverrideDetector(commits scm.CommitSource, marker string, window int) *OverrideDetector {
	return &OverrideDetector{
		commits: commits,
		marker:  strings.ToLower(marker),
		window:  window,
		logger:  slog.Default().With("component", "override_detector"),
	}
}

// Detect returns the first configured service whose recent commits carry the
// marker, halting the scan of the remaining services. A transport failure
// while checking one service is fail-open: the service is treated as clean
// and the scan continues.
func (d *OverrideDetector) Detect(ctx context.Context, services []fleet.Service) (fleet.Service, bool) {
	for _, svc := range services {
		commits, err := d.commits.RecentCommits(ctx, svc.Repository, d.window)
		if err != nil {
			d.logger.Debug("commit check failed, treating as no marker",
				"service", svc.Name, "error", err)
			continue
		}
		for _, commit := range commits {
			if strings.Contains(strings.ToLower(commit.Message), d.marker) {
				d.logger.Info("priority override marker found",
					"service", svc.Name, "sha", commit.SHA)
				return svc, true
			}
		}
	}
	return fleet.Service{}, false
}
