package fleet

import (
	"testing"
	"time"
)

func TestState_Anchor(t *testing.T) {
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	aggregated := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	st := &State{LastUpdated: updated, LastAggregatedAt: aggregated}
	if got := st.Anchor(); !got.Equal(aggregated) {
		t.Errorf("Anchor() = %v, want lastAggregatedAt %v", got, aggregated)
	}

	// States written before the anchor field existed fall back to LastUpdated.
	st = &State{LastUpdated: updated}
	if got := st.Anchor(); !got.Equal(updated) {
		t.Errorf("Anchor() = %v, want lastUpdated %v", got, updated)
	}
}

func TestState_StoredTag(t *testing.T) {
	st := &State{Services: map[string]string{
		"api":     "v1.2.3",
		"worker":  ManifestNoRelease,
		"billing": ManifestFetchError,
		"edge":    ManifestUnknown,
	}}

	tests := []struct {
		service string
		want    string
	}{
		{"api", "v1.2.3"},
		{"worker", ""},
		{"billing", ""},
		{"edge", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			if got := st.StoredTag(tt.service); got != tt.want {
				t.Errorf("StoredTag(%q) = %q, want %q", tt.service, got, tt.want)
			}
		})
	}
}
