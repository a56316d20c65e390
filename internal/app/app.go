// Package app assembles the fiber application.
package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/dayfleet/dayfleet/internal/api/v1/handlers"
	v1 "github.com/dayfleet/dayfleet/internal/api/v1/routes"
)

// New builds the fiber app with middleware and the v1 routes registered.
func New(catalogHandler *handlers.CatalogHandler, fleetHandler *handlers.FleetHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	v1.RegisterRoutes(app, catalogHandler, fleetHandler)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
