// Package fleet provides the domain model for fleet-wide version
// aggregation: service tiers, signal classification, tier weighting, the
// per-service combination rule, the fleet-level fold, and the persisted
// fleet state.
package fleet

import (
	"fmt"

	"github.com/fleetver-tech/fleetver/internal/domain/scm"
)

// Tier classifies how important a service is to the fleet. The tier caps how
// large a bump the service may contribute; it is fixed configuration and
// never mutated at runtime.
type Tier int

const (
	// TierCritical services carry full weight; their bumps pass through uncapped.
	TierCritical Tier = 1
	// TierImportant services cannot alone force a fleet-wide major bump.
	TierImportant Tier = 2
	// TierSupporting services contribute at most a patch bump.
	TierSupporting Tier = 3
)

// IsValid returns true if the tier is one of the defined tiers.
func (t Tier) IsValid() bool {
	switch t {
	case TierCritical, TierImportant, TierSupporting:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierImportant:
		return "important"
	case TierSupporting:
		return "supporting"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Service is one independently-released member of the fleet. The set of
// services is fixed configuration for a run; evaluation order is the
// configured order.
type Service struct {
	Name       string
	Repository scm.Repository
	Tier       Tier
}
