package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/dayfleet/dayfleet/internal/services"
)

// CatalogHandler handles HTTP requests for boot image catalog operations.
type CatalogHandler struct {
	service *services.Catalog
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(service *services.Catalog) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCatalog handles the request to list the current boot image catalog
func (h *CatalogHandler) ListCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Context()))
}
