// Package version provides domain types for fleet semantic versioning.
package version

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Version is a value object representing a (major, minor, patch) triple.
// All operations return new instances. Prerelease and build metadata are
// never carried: the fleet version is always a plain triple, and release
// tags are reduced to their numeric core on parse.
type Version struct {
	major uint64
	minor uint64
	patch uint64
}

// versionCoreRegex extracts the numeric core of a release tag, skipping any
// leading marker characters and ignoring trailing prerelease or build
// suffixes.
var versionCoreRegex = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Zero is the zero version (0.0.0).
var Zero = Version{}

// New creates a new Version value object.
func New(major, minor, patch uint64) Version {
	return Version{major: major, minor: minor, patch: patch}
}

// Parse parses a strict "major.minor.patch" string, as written to the
// persisted fleet state. Returns an error if the string is not a plain
// semantic version triple.
func Parse(s string) (Version, error) {
	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid fleet version %q: %w", s, err)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Zero, fmt.Errorf("invalid fleet version %q: prerelease and metadata are not allowed", s)
	}
	return Version{major: sv.Major(), minor: sv.Minor(), patch: sv.Patch()}, nil
}

// MustParse parses a strict version string and panics if invalid.
// Use only for known-good version strings.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseTag leniently parses a release-tag string into a Version. Leading
// marker characters (such as a "v" prefix) are skipped and any trailing
// prerelease or build suffix is ignored. Returns nil when the tag carries no
// "major.minor.patch" core, so callers degrade to "no delta" instead of
// failing.
func ParseTag(tag string) *Version {
	core := versionCoreRegex.FindString(tag)
	if core == "" {
		return nil
	}
	sv, err := semver.NewVersion(core)
	if err != nil {
		return nil
	}
	return &Version{major: sv.Major(), minor: sv.Minor(), patch: sv.Patch()}
}

// Major returns the major version component.
func (v Version) Major() uint64 {
	return v.major
}

// Minor returns the minor version component.
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch returns the patch version component.
func (v Version) Patch() uint64 {
	return v.patch
}

// String returns the string representation of the version (without 'v' prefix).
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// TagString returns the version with 'v' prefix for release tags.
func (v Version) TagString() string {
	return "v" + v.String()
}

// Compare compares two versions lexicographically on (major, minor, patch).
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if v.major != other.major {
		if v.major < other.major {
			return -1
		}
		return 1
	}
	if v.minor != other.minor {
		if v.minor < other.minor {
			return -1
		}
		return 1
	}
	if v.patch != other.patch {
		if v.patch < other.patch {
			return -1
		}
		return 1
	}
	return 0
}

// Equal returns true if two versions are equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// LessThan returns true if v < other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan returns true if v > other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}
