package aggregate

import (
	"context"
	"testing"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/scm"
)

func TestOverrideDetector_Detect(t *testing.T) {
	services := []fleet.Service{
		service("alpha", "acme/alpha", fleet.TierCritical),
		service("beta", "acme/beta", fleet.TierCritical),
	}

	tests := []struct {
		name        string
		commits     map[string][]scm.Commit
		wantService string
		wantFound   bool
	}{
		{
			name: "marker matched case-insensitively mid-message",
			commits: map[string][]scm.Commit{
				"acme/alpha": {{SHA: "a1", Message: "hotfix: rotate creds [Priority-Release] asap"}},
			},
			wantService: "alpha",
			wantFound:   true,
		},
		{
			name: "first configured service wins",
			commits: map[string][]scm.Commit{
				"acme/alpha": {{SHA: "a1", Message: "[priority-release]"}},
				"acme/beta":  {{SHA: "b1", Message: "[priority-release]"}},
			},
			wantService: "alpha",
			wantFound:   true,
		},
		{
			name: "no marker anywhere",
			commits: map[string][]scm.Commit{
				"acme/alpha": {{SHA: "a1", Message: "feat: add endpoint"}},
				"acme/beta":  {{SHA: "b1", Message: "fix: priority queue release notes"}},
			},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewOverrideDetector(&mockCommitSource{commits: tt.commits}, "[priority-release]", 10)
			svc, found := detector.Detect(context.Background(), services)
			if found != tt.wantFound {
				t.Fatalf("Detect() found = %v, want %v", found, tt.wantFound)
			}
			if found && svc.Name != tt.wantService {
				t.Errorf("Detect() service = %q, want %q", svc.Name, tt.wantService)
			}
		})
	}
}
