package production

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type ProductionRequest struct {
	Date         string  `json:"date"`
	Shift        string  `json:"shift"`
	MachineID    string  `json:"machine_id"`
	OperatorID   string  `json:"operator_id"`
	SiloID       int     `json:"silo_id"`
	ItemID       string  `json:"item_id"`
	IsLargeBeads bool    `json:"is_large_beads"`
	TotalQty     float64 `json:"total_qty"` // pieces, or kg for large beads
	DamagedQty   int     `json:"damaged_qty"`
	AvgWetWeight float64 `json:"avg_wet_weight"`
}

func (r ProductionRequest) command(id, actor string) engine.ProductionCommand {
	return engine.ProductionCommand{
		ID:           id,
		Date:         r.Date,
		Shift:        models.Shift(r.Shift),
		MachineID:    r.MachineID,
		OperatorID:   r.OperatorID,
		SiloID:       r.SiloID,
		ItemID:       r.ItemID,
		IsLargeBeads: r.IsLargeBeads,
		TotalQty:     r.TotalQty,
		DamagedQty:   r.DamagedQty,
		AvgWetWeight: r.AvgWetWeight,
		Actor:        actor,
	}
}

// POST /api/productions
func CreateProductionHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitProduction(body.command("", auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/productions/:id
func UpdateProductionHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitProduction(body.command(c.Params("id"), auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/productions/:id
func DeleteProductionHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteProduction(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted, stock reversed"})
	}
}
