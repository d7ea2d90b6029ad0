// Package version provides domain types for fleet semantic versioning.
package version

import (
	"testing"
)

func TestLevel_Ordering(t *testing.T) {
	if !(LevelNone < LevelPatch && LevelPatch < LevelMinor && LevelMinor < LevelMajor) {
		t.Fatal("levels must be totally ordered none < patch < minor < major")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNone, "none"},
		{LevelPatch, "patch"},
		{LevelMinor, "minor"},
		{LevelMajor, "major"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"none", LevelNone, false},
		{"patch", LevelPatch, false},
		{"minor", LevelMinor, false},
		{"major", LevelMajor, false},
		{"MAJOR", LevelNone, true}, // Not case-insensitive
		{"", LevelNone, true},
		{"huge", LevelNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxLevel(t *testing.T) {
	if got := MaxLevel(LevelPatch, LevelMinor); got != LevelMinor {
		t.Errorf("MaxLevel(patch, minor) = %v, want minor", got)
	}
	if got := MaxLevel(LevelMajor, LevelNone); got != LevelMajor {
		t.Errorf("MaxLevel(major, none) = %v, want major", got)
	}
	if got := MaxLevel(LevelPatch, LevelPatch); got != LevelPatch {
		t.Errorf("MaxLevel(patch, patch) = %v, want patch", got)
	}
}

func TestVersion_Bump(t *testing.T) {
	tests := []struct {
		name    string
		current Version
		level   Level
		want    Version
	}{
		{"major resets lower components", New(1, 4, 2), LevelMajor, New(2, 0, 0)},
		{"minor resets patch", New(2, 0, 0), LevelMinor, New(2, 1, 0)},
		{"patch increments", New(2, 1, 0), LevelPatch, New(2, 1, 1)},
		{"none unchanged", New(1, 4, 2), LevelNone, New(1, 4, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.current.Bump(tt.level); !got.Equal(tt.want) {
				t.Errorf("Bump(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

// TestVersion_Bump_Sequence verifies the bump chain from the documented
// example: (1,4,2) -> major -> minor -> patch.
func TestVersion_Bump_Sequence(t *testing.T) {
	v := New(1, 4, 2)
	v = v.Bump(LevelMajor)
	if v.String() != "2.0.0" {
		t.Fatalf("after major bump got %s, want 2.0.0", v)
	}
	v = v.Bump(LevelMinor)
	if v.String() != "2.1.0" {
		t.Fatalf("after minor bump got %s, want 2.1.0", v)
	}
	v = v.Bump(LevelPatch)
	if v.String() != "2.1.1" {
		t.Fatalf("after patch bump got %s, want 2.1.1", v)
	}
}
