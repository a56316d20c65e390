// Package handlers provides HTTP request handlers for the API
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/dayfleet/dayfleet/internal/types"
)

// statusForError maps workflow errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, types.ErrAddressTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, types.ErrLaunchFailed), errors.Is(err, types.ErrRegistryWrite):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(types.ErrorResponse{Error: err.Error()})
}
