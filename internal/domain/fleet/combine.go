package fleet

import (
	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

// SignalKind identifies which signal drove a per-service bump.
type SignalKind int

const (
	// SignalVersionDelta is the floor signal: the bump implied by the
	// observed release-tag delta.
	SignalVersionDelta SignalKind = iota
	// SignalLabel is the business signal: the bump implied by pull-request
	// labels merged since the anchor.
	SignalLabel
)

// String returns a human-readable name for the signal kind.
func (k SignalKind) String() string {
	if k == SignalLabel {
		return "label"
	}
	return "version-delta"
}

// Combine merges the floor and business signals of one service into the raw
// bump level and the signal attributed as its driver. The higher level wins;
// when the levels tie, the version delta wins provenance (the magnitude is
// identical either way).
func Combine(versionLevel, labelLevel version.Level) (version.Level, SignalKind) {
	if labelLevel > versionLevel {
		return labelLevel, SignalLabel
	}
	return versionLevel, SignalVersionDelta
}

// ServiceResult is the immutable outcome of evaluating one service.
type ServiceResult struct {
	// Name of the evaluated service.
	Name string
	// Tier of the evaluated service.
	Tier Tier
	// Raw is the combined bump level before tier weighting.
	Raw version.Level
	// Level is the bump level the service contributes, after tier weighting.
	Level version.Level
	// Driver is the signal attributed for the raw level.
	Driver SignalKind
	// Reason is the human-readable justification for a non-none level.
	Reason string
}

// Decision is the fleet-wide outcome of folding every service result.
type Decision struct {
	Level  version.Level
	Reason string
}

// ReasonNoChanges is the default justification when every service
// contributes LevelNone.
const ReasonNoChanges = "no services changed this cycle"

// Aggregate folds the ordered per-service results into the fleet decision.
// The running maximum wins; a later service only takes over the
// justification when it strictly exceeds the current maximum, so for equal
// levels the earliest service in configuration order is credited. Services
// contributing LevelNone never affect the decision.
func Aggregate(results []ServiceResult) Decision {
	decision := Decision{Level: version.LevelNone, Reason: ReasonNoChanges}
	for _, r := range results {
		if r.Level == version.LevelNone {
			continue
		}
		if r.Level > decision.Level {
			decision = Decision{Level: r.Level, Reason: r.Reason}
		}
	}
	return decision
}
