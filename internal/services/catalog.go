// Package services provides business logic implementation for the API
package services

import (
	"context"

	"github.com/dayfleet/dayfleet/internal/compute"
	"github.com/dayfleet/dayfleet/internal/types"
)

// Catalog provides business logic for boot image catalog operations.
type Catalog struct {
	api compute.EC2API
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(api compute.EC2API) *Catalog {
	return &Catalog{api: api}
}

// List resolves the current boot image catalog. Every call re-queries the
// provider, so two calls may disagree when a newer image has just been
// published.
func (s *Catalog) List(ctx context.Context) []types.BootImage {
	return compute.ResolveCatalog(ctx, s.api)
}

// Find returns the cataloged image with the given id, or nil when the id does
// not currently resolve.
func (s *Catalog) Find(ctx context.Context, imageID string) *types.BootImage {
	for _, image := range s.List(ctx) {
		if image.ID == imageID {
			img := image
			return &img
		}
	}
	return nil
}
