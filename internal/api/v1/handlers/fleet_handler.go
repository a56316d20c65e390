package handlers

import (
	"context"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/dayfleet/dayfleet/internal/services"
	"github.com/dayfleet/dayfleet/internal/types"
)

// FleetHandler handles HTTP requests for fleet and provisioning operations.
type FleetHandler struct {
	fleet       *services.Fleet
	provisioner *services.Provisioner
}

// NewFleetHandler creates a new fleet handler instance
func NewFleetHandler(fleet *services.Fleet, provisioner *services.Provisioner) *FleetHandler {
	return &FleetHandler{fleet: fleet, provisioner: provisioner}
}

// ListFleet handles the request to list all managed instances
func (h *FleetHandler) ListFleet(c *fiber.Ctx) error {
	instances, err := h.fleet.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	if instances == nil {
		instances = []types.ManagedInstance{}
	}
	return c.JSON(instances)
}

// ListOrphans handles the request to list instances with no gateway connection
func (h *FleetHandler) ListOrphans(c *fiber.Ctx) error {
	orphans, err := h.fleet.Orphans(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	if orphans == nil {
		orphans = []types.ManagedInstance{}
	}
	return c.JSON(orphans)
}

// Provision handles the request to provision a new machine.
//
// The workflow runs on a background context: a caller disconnecting mid-flow
// must not cancel provider calls or the address poll, since those side
// effects are not unwindable. Only the response delivery is abandoned.
func (h *FleetHandler) Provision(c *fiber.Ctx) error {
	var req types.ProvisionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, types.ErrInvalidInput("%v", err))
	}

	result, err := h.provisioner.Provision(context.Background(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Teardown handles the request to terminate a machine and remove its gateway
// connection
func (h *FleetHandler) Teardown(c *fiber.Ctx) error {
	var req types.TeardownRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, types.ErrInvalidInput("%v", err))
	}

	if err := h.provisioner.Teardown(context.Background(), req); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Start handles the request to start a stopped instance
func (h *FleetHandler) Start(c *fiber.Ctx) error {
	var req types.LifecycleRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, types.ErrInvalidInput("%v", err))
	}
	if err := h.provisioner.Start(context.Background(), req); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// Stop handles the request to stop a running instance
func (h *FleetHandler) Stop(c *fiber.Ctx) error {
	var req types.LifecycleRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, types.ErrInvalidInput("%v", err))
	}
	if err := h.provisioner.Stop(context.Background(), req); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
