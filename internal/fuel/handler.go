package fuel

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type FuelRequest struct {
	Date      string  `json:"date"`
	Shift     string  `json:"shift"`
	Opening   float64 `json:"opening"`
	Purchased float64 `json:"purchased"`
	Closing   float64 `json:"closing"`
}

func (r FuelRequest) command(id, actor string) engine.FuelCommand {
	return engine.FuelCommand{
		ID:        id,
		Date:      r.Date,
		Shift:     models.Shift(r.Shift),
		Opening:   r.Opening,
		Purchased: r.Purchased,
		Closing:   r.Closing,
		Actor:     actor,
	}
}

// POST /api/fuel-entries
func CreateFuelHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FuelRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitFuel(body.command("", auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/fuel-entries/:id
func UpdateFuelHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FuelRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitFuel(body.command(c.Params("id"), auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/fuel-entries/:id
func DeleteFuelHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteFuel(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted"})
	}
}
