package services

import (
	"context"
	"fmt"

	"github.com/dayfleet/dayfleet/internal/compute"
	"github.com/dayfleet/dayfleet/internal/db/repos"
	"github.com/dayfleet/dayfleet/internal/types"
)

// Fleet provides business logic for fleet inventory operations.
type Fleet struct {
	api         compute.EC2API
	catalog     *Catalog
	connections *repos.ConnectionRepository
}

// NewFleetService creates a new fleet service instance
func NewFleetService(api compute.EC2API, catalog *Catalog, connections *repos.ConnectionRepository) *Fleet {
	return &Fleet{api: api, catalog: catalog, connections: connections}
}

// List returns all provider-known instances with display metadata attached.
// The provider stays the source of truth; nothing is cached.
func (s *Fleet) List(ctx context.Context) ([]types.ManagedInstance, error) {
	return compute.ListInstances(ctx, s.api, s.catalog.List(ctx))
}

// Orphans returns live instances whose name has no gateway connection row.
// These are the leftovers of partial provisioning attempts (or of a teardown
// whose termination silently failed at the provider) and need operator
// attention; the provisioning workflow never cleans them up itself.
func (s *Fleet) Orphans(ctx context.Context) ([]types.ManagedInstance, error) {
	instances, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.connections.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gateway connections: %w", err)
	}
	registered := make(map[string]struct{}, len(names))
	for _, name := range names {
		registered[name] = struct{}{}
	}

	var orphans []types.ManagedInstance
	for _, inst := range instances {
		if inst.State == "terminated" || inst.State == "shutting-down" {
			continue
		}
		if _, ok := registered[inst.Name]; !ok {
			orphans = append(orphans, inst)
		}
	}
	return orphans, nil
}
