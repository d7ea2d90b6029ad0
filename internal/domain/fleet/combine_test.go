package fleet

import (
	"testing"

	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name         string
		versionLevel version.Level
		labelLevel   version.Level
		wantLevel    version.Level
		wantDriver   SignalKind
	}{
		{"label beats lower delta", version.LevelNone, version.LevelPatch, version.LevelPatch, SignalLabel},
		{"delta beats lower label", version.LevelMinor, version.LevelPatch, version.LevelMinor, SignalVersionDelta},
		{"tie goes to version delta", version.LevelMinor, version.LevelMinor, version.LevelMinor, SignalVersionDelta},
		{"both none", version.LevelNone, version.LevelNone, version.LevelNone, SignalVersionDelta},
		{"label major over delta patch", version.LevelPatch, version.LevelMajor, version.LevelMajor, SignalLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, driver := Combine(tt.versionLevel, tt.labelLevel)
			if level != tt.wantLevel {
				t.Errorf("Combine() level = %v, want %v", level, tt.wantLevel)
			}
			if driver != tt.wantDriver {
				t.Errorf("Combine() driver = %v, want %v", driver, tt.wantDriver)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		results    []ServiceResult
		wantLevel  version.Level
		wantReason string
	}{
		{
			name:       "empty results",
			results:    nil,
			wantLevel:  version.LevelNone,
			wantReason: ReasonNoChanges,
		},
		{
			name: "all none keeps default reason",
			results: []ServiceResult{
				{Name: "a", Level: version.LevelNone},
				{Name: "b", Level: version.LevelNone},
			},
			wantLevel:  version.LevelNone,
			wantReason: ReasonNoChanges,
		},
		{
			name: "highest level wins",
			results: []ServiceResult{
				{Name: "a", Level: version.LevelPatch, Reason: "a patch"},
				{Name: "b", Level: version.LevelMinor, Reason: "b minor"},
				{Name: "c", Level: version.LevelPatch, Reason: "c patch"},
			},
			wantLevel:  version.LevelMinor,
			wantReason: "b minor",
		},
		{
			name: "earliest service credited on equal levels",
			results: []ServiceResult{
				{Name: "a", Level: version.LevelMinor, Reason: "a minor"},
				{Name: "b", Level: version.LevelMinor, Reason: "b minor"},
			},
			wantLevel:  version.LevelMinor,
			wantReason: "a minor",
		},
		{
			name: "none results do not disturb the maximum",
			results: []ServiceResult{
				{Name: "a", Level: version.LevelMajor, Reason: "a major"},
				{Name: "b", Level: version.LevelNone, Reason: ""},
			},
			wantLevel:  version.LevelMajor,
			wantReason: "a major",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.results)
			if got.Level != tt.wantLevel {
				t.Errorf("Aggregate() level = %v, want %v", got.Level, tt.wantLevel)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Aggregate() reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestSignalKind_String(t *testing.T) {
	if SignalVersionDelta.String() != "version-delta" {
		t.Errorf("SignalVersionDelta.String() = %q", SignalVersionDelta.String())
	}
	if SignalLabel.String() != "label" {
		t.Errorf("SignalLabel.String() = %q", SignalLabel.String())
	}
}
