package version

// Delta classifies the bump implied by moving from an old release tag to a
// new one. It is the "floor" signal: what actually shipped, independent of
// any label bookkeeping.
//
// Components are compared in priority order major, minor, patch; the first
// component where next exceeds prev determines the level. When either side
// is absent (nil, from a missing or unparsable tag) the delta is LevelNone.
// Prerelease metadata is never inspected; ParseTag has already dropped it.
func Delta(prev, next *Version) Level {
	if prev == nil || next == nil {
		return LevelNone
	}
	switch {
	case next.major > prev.major:
		return LevelMajor
	case next.minor > prev.minor:
		return LevelMinor
	case next.patch > prev.patch:
		return LevelPatch
	default:
		return LevelNone
	}
}
