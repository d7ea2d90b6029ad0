package fleet

import (
	"context"
	"time"

	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

// Sentinel manifest values for services whose release tag could not be read.
const (
	// ManifestNoRelease marks a service whose repository has no releases yet.
	ManifestNoRelease = "no-release"
	// ManifestFetchError marks a service whose release fetch failed and no
	// previously stored tag was available to fall back to.
	ManifestFetchError = "fetch-error"
	// ManifestUnknown marks a service whose tag is unknown on a forced run.
	ManifestUnknown = "unknown"
)

// State is the durable record linking one aggregation run to the next. It is
// read once at run start and replaced wholesale at run end; it is never
// partially updated mid-run. Current is non-decreasing across runs.
type State struct {
	// Current is the fleet (BOSS) version after the run.
	Current version.Version
	// Previous is the fleet version before the run.
	Previous version.Version
	// BumpType is the bump applied by the run.
	BumpType version.Level
	// BumpReason is the human-readable justification for the bump.
	BumpReason string
	// LastUpdated is the completion time of the run.
	LastUpdated time.Time
	// LastAggregatedAt is the anchor bounding the next run's pull-request
	// scan. It advances to the run's completion time even when no bump
	// occurred, so a no-op run still moves the scanning window forward.
	LastAggregatedAt time.Time
	// RunID uniquely identifies the run that wrote the state.
	RunID string
	// Services maps each configured service name to its last observed
	// release tag, or to one of the Manifest sentinels. After a run the map
	// holds one entry per configured service, never fewer.
	Services map[string]string
}

// Anchor returns the timestamp bounding the next run's pull-request scan.
// States written before the anchor field existed fall back to LastUpdated.
func (s *State) Anchor() time.Time {
	if !s.LastAggregatedAt.IsZero() {
		return s.LastAggregatedAt
	}
	return s.LastUpdated
}

// StoredTag returns the manifest entry for a service when it names a real
// release tag, or "" when the entry is absent or a sentinel.
func (s *State) StoredTag(name string) string {
	switch tag := s.Services[name]; tag {
	case "", ManifestNoRelease, ManifestFetchError, ManifestUnknown:
		return ""
	default:
		return tag
	}
}

// Store is the durable home of the fleet state. Load fails when no state
// exists: the first run requires a seed file. Save replaces the entire
// persisted record atomically; a prior state must never be observably mixed
// with a new one.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}
