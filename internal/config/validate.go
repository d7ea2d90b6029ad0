package config

import (
	"fmt"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/scm"
	fverrors "github.com/fleetver-tech/fleetver/internal/errors"
)

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	const op = "config.Validate"

	if c.Fleet.StateFile == "" {
		return fverrors.Validation(op, "fleet.state_file must not be empty")
	}
	if len(c.Fleet.Services) == 0 {
		return fverrors.Validation(op, "fleet.services must list at least one service")
	}
	if c.GitHub.PageSize < 1 {
		return fverrors.Validation(op, "github.page_size must be at least 1")
	}
	if c.GitHub.CommitWindow < 1 {
		return fverrors.Validation(op, "github.commit_window must be at least 1")
	}
	if c.GitHub.OverrideMarker == "" {
		return fverrors.Validation(op, "github.override_marker must not be empty")
	}

	seen := make(map[string]struct{}, len(c.Fleet.Services))
	for i, svc := range c.Fleet.Services {
		if svc.Name == "" {
			return fverrors.Validation(op, fmt.Sprintf("fleet.services[%d]: name must not be empty", i))
		}
		if _, dup := seen[svc.Name]; dup {
			return fverrors.Validation(op, fmt.Sprintf("fleet.services[%d]: duplicate service name %q", i, svc.Name))
		}
		seen[svc.Name] = struct{}{}

		if _, err := scm.ParseRepository(svc.Repository); err != nil {
			return fverrors.Validation(op, fmt.Sprintf("fleet.services[%d]: %v", i, err))
		}
		if !fleet.Tier(svc.Tier).IsValid() {
			return fverrors.Validation(op, fmt.Sprintf("fleet.services[%d]: tier %d out of range (1-3)", i, svc.Tier))
		}
	}
	return nil
}

// FleetServices converts the configured service list into domain services,
// preserving order. Call Validate first; conversion fails on malformed
// repository identifiers.
func (c *Config) FleetServices() ([]fleet.Service, error) {
	services := make([]fleet.Service, 0, len(c.Fleet.Services))
	for _, svc := range c.Fleet.Services {
		repo, err := scm.ParseRepository(svc.Repository)
		if err != nil {
			return nil, fverrors.ConfigWrap(err, "config.FleetServices", "service "+svc.Name)
		}
		services = append(services, fleet.Service{
			Name:       svc.Name,
			Repository: repo,
			Tier:       fleet.Tier(svc.Tier),
		})
	}
	return services, nil
}
