package expanding

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type PreExpandingRequest struct {
	Date         string  `json:"date"`
	Shift        string  `json:"shift"`
	Machine      string  `json:"machine"`
	MaterialID   string  `json:"material_id"`
	OperatorID   string  `json:"operator_id"`
	QuantityKg   float64 `json:"quantity_kg"`
	OutputSiloID int     `json:"output_silo_id"`
}

func (r PreExpandingRequest) command(id, actor string) engine.PreExpandingCommand {
	return engine.PreExpandingCommand{
		ID:           id,
		Date:         r.Date,
		Shift:        models.Shift(r.Shift),
		Machine:      r.Machine,
		MaterialID:   r.MaterialID,
		OperatorID:   r.OperatorID,
		QuantityKg:   r.QuantityKg,
		OutputSiloID: r.OutputSiloID,
		Actor:        actor,
	}
}

// POST /api/pre-expandings
func CreatePreExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PreExpandingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitPreExpanding(body.command("", auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/pre-expandings/:id
func UpdatePreExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PreExpandingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitPreExpanding(body.command(c.Params("id"), auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/pre-expandings/:id
func DeletePreExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeletePreExpanding(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted, stock reversed"})
	}
}
