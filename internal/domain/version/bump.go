// Package version provides domain types for fleet semantic versioning.
package version

import (
	"fmt"
)

// Level represents a version bump level. Levels are totally ordered:
// LevelNone < LevelPatch < LevelMinor < LevelMajor. Every signal the
// decision engine handles is expressed as a Level, and signals combine by
// taking the maximum under this order.
type Level int

const (
	// LevelNone indicates no version bump.
	LevelNone Level = iota
	// LevelPatch indicates a patch version bump (bug fixes).
	LevelPatch
	// LevelMinor indicates a minor version bump (new features).
	LevelMinor
	// LevelMajor indicates a major version bump (breaking changes).
	LevelMajor
)

// IsValid returns true if the level is one of the defined bump levels.
func (l Level) IsValid() bool {
	return l >= LevelNone && l <= LevelMajor
}

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelPatch:
		return "patch"
	case LevelMinor:
		return "minor"
	case LevelMajor:
		return "major"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "none":
		return LevelNone, nil
	case "patch":
		return LevelPatch, nil
	case "minor":
		return LevelMinor, nil
	case "major":
		return LevelMajor, nil
	default:
		return LevelNone, fmt.Errorf("invalid bump level: %q (must be none, patch, minor, or major)", s)
	}
}

// MaxLevel returns the higher of two levels.
func MaxLevel(a, b Level) Level {
	if b > a {
		return b
	}
	return a
}

// Bump applies a bump level to the version and returns the next version.
// Lower components always reset to zero on a higher-order bump; LevelNone
// leaves the version unchanged.
func (v Version) Bump(l Level) Version {
	switch l {
	case LevelMajor:
		return Version{major: v.major + 1}
	case LevelMinor:
		return Version{major: v.major, minor: v.minor + 1}
	case LevelPatch:
		return Version{major: v.major, minor: v.minor, patch: v.patch + 1}
	default:
		return v
	}
}
