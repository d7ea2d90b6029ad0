package fleet

import (
	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

// CapForTier caps a raw bump level by the service's tier, independent of
// where the raw level came from:
//
//   - tier 1 passes everything through,
//   - tier 2 caps major to minor,
//   - tier 3 collapses any non-none level to patch.
//
// This guarantees a single non-critical service cannot alone force a
// fleet-wide major bump.
func CapForTier(tier Tier, level version.Level) version.Level {
	switch tier {
	case TierImportant:
		if level == version.LevelMajor {
			return version.LevelMinor
		}
	case TierSupporting:
		if level != version.LevelNone {
			return version.LevelPatch
		}
	}
	return level
}
