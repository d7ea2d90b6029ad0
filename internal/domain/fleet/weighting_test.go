package fleet

import (
	"testing"

	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

func TestCapForTier(t *testing.T) {
	levels := []version.Level{
		version.LevelNone, version.LevelPatch, version.LevelMinor, version.LevelMajor,
	}

	// Tier 1 passes everything through.
	for _, level := range levels {
		if got := CapForTier(TierCritical, level); got != level {
			t.Errorf("CapForTier(critical, %v) = %v, want %v", level, got, level)
		}
	}

	tests := []struct {
		name  string
		tier  Tier
		level version.Level
		want  version.Level
	}{
		{"tier2 caps major to minor", TierImportant, version.LevelMajor, version.LevelMinor},
		{"tier2 passes minor", TierImportant, version.LevelMinor, version.LevelMinor},
		{"tier2 passes patch", TierImportant, version.LevelPatch, version.LevelPatch},
		{"tier2 passes none", TierImportant, version.LevelNone, version.LevelNone},
		{"tier3 collapses major to patch", TierSupporting, version.LevelMajor, version.LevelPatch},
		{"tier3 collapses minor to patch", TierSupporting, version.LevelMinor, version.LevelPatch},
		{"tier3 keeps patch", TierSupporting, version.LevelPatch, version.LevelPatch},
		{"tier3 keeps none", TierSupporting, version.LevelNone, version.LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapForTier(tt.tier, tt.level); got != tt.want {
				t.Errorf("CapForTier(%v, %v) = %v, want %v", tt.tier, tt.level, got, tt.want)
			}
		})
	}
}

func TestTier_IsValid(t *testing.T) {
	for _, tier := range []Tier{TierCritical, TierImportant, TierSupporting} {
		if !tier.IsValid() {
			t.Errorf("IsValid() = false for %v, want true", tier)
		}
	}
	for _, tier := range []Tier{Tier(0), Tier(4), Tier(-1)} {
		if tier.IsValid() {
			t.Errorf("IsValid() = true for %d, want false", int(tier))
		}
	}
}

func TestTier_String(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierCritical, "critical"},
		{TierImportant, "important"},
		{TierSupporting, "supporting"},
		{Tier(7), "tier(7)"},
	}

	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
