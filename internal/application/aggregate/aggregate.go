package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/scm"
	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

// Input represents input for the aggregation use case.
type Input struct {
	// DryRun evaluates the fleet and reports the decision without
	// persisting the new state.
	DryRun bool
	// Now overrides the run completion time; the zero value means time.Now.
	Now time.Time
}

// Output represents the outcome of an aggregation run.
type Output struct {
	// State is the state as written, or as it would have been written under
	// a dry run.
	State *fleet.State
	// Results holds the per-service evaluation outcomes, in configuration
	// order. Empty when the priority override fired.
	Results []fleet.ServiceResult
	// Overridden reports whether the priority override forced the decision.
	Overridden bool
	// OverrideService names the service whose commit history carried the
	// marker, when Overridden is true.
	OverrideService string
}

// UseCase runs one fleet version aggregation cycle. All collaborators are
// injected; the use case never reaches into process-global state.
type UseCase struct {
	services  []fleet.Service
	releases  scm.ReleaseSource
	detector  *OverrideDetector
	collector *Collector
	store     fleet.Store
	logger    *slog.Logger
}

// New creates the aggregation use case over an ordered service list.
func New(
	services []fleet.Service,
	releases scm.ReleaseSource,
	detector *OverrideDetector,
	collector *Collector,
	store fleet.Store,
) *UseCase {
	return &UseCase{
		services:  services,
		releases:  releases,
		detector:  detector,
		collector: collector,
		store:     store,
		logger:    slog.Default().With("usecase", "aggregate"),
	}
}

// Execute runs one aggregation cycle.
//
// The priority override check runs first across all services in
// configuration order; when it fires, signal combination and tier weighting
// are bypassed entirely and the bump is forced to major. Otherwise every
// service is evaluated sequentially, the per-service results are folded into
// the fleet decision, and the arithmetic is applied to the current version.
// The state is replaced exactly once, at the end, with the anchor advanced
// to the run's completion time regardless of whether any bump occurred.
func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	runID := uuid.NewString()

	prev, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	anchor := prev.Anchor()
	uc.logger.Info("aggregation run starting",
		"run_id", runID, "current_version", prev.Current.String(), "anchor", anchor)

	if svc, ok := uc.detector.Detect(ctx, uc.services); ok {
		return uc.executeOverride(ctx, prev, svc, now, runID, input.DryRun)
	}

	results := make([]fleet.ServiceResult, 0, len(uc.services))
	manifest := make(map[string]string, len(uc.services))
	for _, svc := range uc.services {
		result := uc.evaluateService(ctx, svc, prev, anchor, manifest)
		if result.Level != version.LevelNone {
			uc.logger.Info("service evaluated",
				"service", svc.Name, "level", result.Level.String(), "driver", result.Driver.String())
		}
		results = append(results, result)
	}

	decision := fleet.Aggregate(results)
	next := prev.Current.Bump(decision.Level)

	state := &fleet.State{
		Current:          next,
		Previous:         prev.Current,
		BumpType:         decision.Level,
		BumpReason:       decision.Reason,
		LastUpdated:      now,
		LastAggregatedAt: now,
		RunID:            runID,
		Services:         manifest,
	}
	if !input.DryRun {
		if err := uc.store.Save(ctx, state); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("aggregation run complete",
		"run_id", runID, "bump", decision.Level.String(), "next_version", next.String())
	return &Output{State: state, Results: results}, nil
}

// executeOverride handles a fired priority override: the bump is forced to
// major unconditionally, and the manifest is still populated best-effort
// purely for record-keeping.
func (uc *UseCase) executeOverride(ctx context.Context, prev *fleet.State, svc fleet.Service, now time.Time, runID string, dryRun bool) (*Output, error) {
	manifest := uc.snapshotManifest(ctx, prev)
	reason := fmt.Sprintf("priority override marker found in %s commit history", svc.Name)

	state := &fleet.State{
		Current:          prev.Current.Bump(version.LevelMajor),
		Previous:         prev.Current,
		BumpType:         version.LevelMajor,
		BumpReason:       reason,
		LastUpdated:      now,
		LastAggregatedAt: now,
		RunID:            runID,
		Services:         manifest,
	}
	if !dryRun {
		if err := uc.store.Save(ctx, state); err != nil {
			return nil, err
		}
	}

	uc.logger.Warn("priority override forced a major bump",
		"run_id", runID, "service", svc.Name, "next_version", state.Current.String())
	return &Output{State: state, Overridden: true, OverrideService: svc.Name}, nil
}

// evaluateService produces the immutable result of one service and records
// its manifest entry.
//
// A failed release fetch means "no usable signal": the service contributes
// LevelNone, its manifest entry falls back to the previously stored value or
// the fetch-error sentinel, and no pull-request scan is attempted. An empty
// release list is not a failure: the delta is none but labels still count.
func (uc *UseCase) evaluateService(ctx context.Context, svc fleet.Service, prev *fleet.State, anchor time.Time, manifest map[string]string) fleet.ServiceResult {
	tag, err := uc.releases.LatestReleaseTag(ctx, svc.Repository)
	if err != nil {
		uc.logger.Warn("release fetch failed, skipping service",
			"service", svc.Name, "error", err)
		if stored := prev.Services[svc.Name]; stored != "" {
			manifest[svc.Name] = stored
		} else {
			manifest[svc.Name] = fleet.ManifestFetchError
		}
		return fleet.ServiceResult{Name: svc.Name, Tier: svc.Tier}
	}
	if tag == "" {
		manifest[svc.Name] = fleet.ManifestNoRelease
	} else {
		manifest[svc.Name] = tag
	}

	storedTag := prev.StoredTag(svc.Name)
	versionLevel := version.Delta(version.ParseTag(storedTag), version.ParseTag(tag))

	labels, err := uc.collector.Collect(ctx, svc.Repository, anchor)
	if err != nil {
		// Recoverable: keep whatever was gathered before the failure and
		// fall back to the version-delta signal alone.
		uc.logger.Warn("pull request scan aborted",
			"service", svc.Name, "labels_gathered", len(labels), "error", err)
	}
	labelDecision := fleet.ClassifyLabels(svc.Tier, labels)

	raw, driver := fleet.Combine(versionLevel, labelDecision.Level)
	capped := fleet.CapForTier(svc.Tier, raw)

	return fleet.ServiceResult{
		Name:   svc.Name,
		Tier:   svc.Tier,
		Raw:    raw,
		Level:  capped,
		Driver: driver,
		Reason: serviceReason(svc, driver, capped, storedTag, tag, labelDecision.Label),
	}
}

// snapshotManifest best-effort populates the manifest on a forced run:
// latest release tag if fetchable, else the previously stored value, else
// the unknown sentinel.
func (uc *UseCase) snapshotManifest(ctx context.Context, prev *fleet.State) map[string]string {
	manifest := make(map[string]string, len(uc.services))
	for _, svc := range uc.services {
		tag, err := uc.releases.LatestReleaseTag(ctx, svc.Repository)
		switch {
		case err == nil && tag != "":
			manifest[svc.Name] = tag
		case err == nil:
			manifest[svc.Name] = fleet.ManifestNoRelease
		case prev.Services[svc.Name] != "":
			manifest[svc.Name] = prev.Services[svc.Name]
		default:
			manifest[svc.Name] = fleet.ManifestUnknown
		}
	}
	return manifest
}

// serviceReason builds the human-readable justification for a service's
// contributed bump level.
func serviceReason(svc fleet.Service, driver fleet.SignalKind, level version.Level, oldTag, newTag, label string) string {
	if level == version.LevelNone {
		return ""
	}
	levelName := strings.ToUpper(level.String())
	if driver == fleet.SignalLabel {
		return fmt.Sprintf("service %s (tier %d): label %q requires %s",
			svc.Name, int(svc.Tier), label, levelName)
	}
	if oldTag == "" {
		oldTag = "none"
	}
	return fmt.Sprintf("service %s (tier %d): version delta %s -> %s requires %s",
		svc.Name, int(svc.Tier), oldTag, newTag, levelName)
}
