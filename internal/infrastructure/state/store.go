// Package state persists the fleet state to a JSON file.
package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/version"
	fverrors "github.com/fleetver-tech/fleetver/internal/errors"
	"github.com/fleetver-tech/fleetver/internal/fileutil"
)

// MaxStateFileSize is the maximum allowed size for the state file (1MB).
const MaxStateFileSize = 1 << 20

// FileStore implements fleet.Store using a single JSON file. Save replaces
// the file atomically, so readers never observe a mix of old and new state.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed fleet state store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the state file path.
func (s *FileStore) Path() string {
	return s.path
}

// stateDTO is the external JSON schema of the persisted fleet state. The
// camelCase key names are a published contract consumed by the surrounding
// CI tooling.
type stateDTO struct {
	BossVersion      string            `json:"bossVersion"`
	PreviousVersion  string            `json:"previousVersion"`
	BumpType         string            `json:"bumpType"`
	BumpReason       string            `json:"bumpReason"`
	LastUpdated      string            `json:"lastUpdated"`
	LastAggregatedAt string            `json:"lastAggregatedAt,omitempty"`
	RunID            string            `json:"runId,omitempty"`
	Services         map[string]string `json:"services"`
}

// Load reads and parses the persisted fleet state. A missing file is an
// error: the first run requires a seed file.
func (s *FileStore) Load(ctx context.Context) (*fleet.State, error) {
	const op = "state.Load"

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileLimited(s.path, MaxStateFileSize)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fverrors.StateWrap(err, op,
				"state file not found at "+s.path+" (run 'fleetver init' to seed one)")
		}
		return nil, fverrors.StateWrap(err, op, "failed to read state file")
	}

	var dto stateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fverrors.StateWrap(err, op, "failed to parse state file")
	}
	return dtoToState(&dto)
}

// Save atomically replaces the persisted fleet state.
func (s *FileStore) Save(ctx context.Context, st *fleet.State) error {
	const op = "state.Save"

	if err := ctx.Err(); err != nil {
		return err
	}

	dto := stateToDTO(st)
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return fverrors.StateWrap(err, op, "failed to marshal state")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fverrors.StateWrap(err, op, "failed to create state directory")
	}
	if err := fileutil.AtomicWriteFile(s.path, data, 0o644); err != nil {
		return fverrors.StateWrap(err, op, "failed to write state file")
	}
	return nil
}

func dtoToState(dto *stateDTO) (*fleet.State, error) {
	const op = "state.Load"

	current, err := version.Parse(dto.BossVersion)
	if err != nil {
		return nil, fverrors.StateWrap(err, op, "invalid bossVersion")
	}

	previous := version.Zero
	if dto.PreviousVersion != "" {
		previous, err = version.Parse(dto.PreviousVersion)
		if err != nil {
			return nil, fverrors.StateWrap(err, op, "invalid previousVersion")
		}
	}

	bump := version.LevelNone
	if dto.BumpType != "" {
		bump, err = version.ParseLevel(dto.BumpType)
		if err != nil {
			return nil, fverrors.StateWrap(err, op, "invalid bumpType")
		}
	}

	lastUpdated, err := time.Parse(time.RFC3339, dto.LastUpdated)
	if err != nil {
		return nil, fverrors.StateWrap(err, op, "invalid lastUpdated timestamp")
	}

	// lastAggregatedAt is optional: states written before the anchor field
	// existed fall back to lastUpdated via State.Anchor.
	var lastAggregatedAt time.Time
	if dto.LastAggregatedAt != "" {
		lastAggregatedAt, err = time.Parse(time.RFC3339, dto.LastAggregatedAt)
		if err != nil {
			return nil, fverrors.StateWrap(err, op, "invalid lastAggregatedAt timestamp")
		}
	}

	services := dto.Services
	if services == nil {
		services = map[string]string{}
	}

	return &fleet.State{
		Current:          current,
		Previous:         previous,
		BumpType:         bump,
		BumpReason:       dto.BumpReason,
		LastUpdated:      lastUpdated,
		LastAggregatedAt: lastAggregatedAt,
		RunID:            dto.RunID,
		Services:         services,
	}, nil
}

func stateToDTO(st *fleet.State) *stateDTO {
	dto := &stateDTO{
		BossVersion:     st.Current.String(),
		PreviousVersion: st.Previous.String(),
		BumpType:        st.BumpType.String(),
		BumpReason:      st.BumpReason,
		LastUpdated:     st.LastUpdated.UTC().Format(time.RFC3339),
		RunID:           st.RunID,
		Services:        st.Services,
	}
	if !st.LastAggregatedAt.IsZero() {
		dto.LastAggregatedAt = st.LastAggregatedAt.UTC().Format(time.RFC3339)
	}
	if dto.Services == nil {
		dto.Services = map[string]string{}
	}
	return dto
}
