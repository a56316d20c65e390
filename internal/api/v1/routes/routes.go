// Package routes defines the API routes and URL structure
package routes

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/dayfleet/dayfleet/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering matters: fixed segments (e.g. /fleet/orphans) must be
// registered before any param route would swallow them.
func RegisterRoutes(
	app *fiber.App,
	catalogHandler *handlers.CatalogHandler,
	fleetHandler *handlers.FleetHandler,
) {
	v1 := app.Group(APIv1Prefix)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Boot image catalog
	v1.Get("/catalog", catalogHandler.ListCatalog)

	// Fleet endpoints
	fleet := v1.Group("/fleet")
	fleet.Get("/", fleetHandler.ListFleet)
	fleet.Get("/orphans", fleetHandler.ListOrphans)
	fleet.Post("/", fleetHandler.Provision)
	fleet.Post("/start", fleetHandler.Start)
	fleet.Post("/stop", fleetHandler.Stop)
	fleet.Delete("/", fleetHandler.Teardown)
}
