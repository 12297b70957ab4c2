package web

import (
	"errors"

	"factorypro-backend/internal/engine"

	"github.com/gofiber/fiber/v2"
)

// Error maps engine errors onto HTTP statuses. Engine messages are meant for
// display, so they pass through verbatim.
func Error(err error) error {
	var (
		validation   *engine.ValidationError
		notFound     *engine.NotFoundError
		inUse        *engine.InUseError
		insufficient *engine.InsufficientStockError
		capacity     *engine.CapacityExceededError
		initialized  *engine.AlreadyInitializedError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &inUse), errors.As(err, &insufficient),
		errors.As(err, &capacity), errors.As(err, &initialized):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Unexpected server error")
	}
}
