package delivery

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type DeliveryRequest struct {
	Date     string  `json:"date"`
	ItemID   string  `json:"item_id"` // "large_beads" or a finished-goods item id
	Quantity float64 `json:"quantity"`
	Remarks  string  `json:"remarks"`
}

func (r DeliveryRequest) command(id, actor string) engine.DeliveryCommand {
	return engine.DeliveryCommand{
		ID:       id,
		Date:     r.Date,
		ItemID:   r.ItemID,
		Quantity: r.Quantity,
		Remarks:  r.Remarks,
		Actor:    actor,
	}
}

// POST /api/deliveries
func CreateDeliveryHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitDelivery(body.command("", auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/deliveries/:id
func UpdateDeliveryHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitDelivery(body.command(c.Params("id"), auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/deliveries/:id
func DeleteDeliveryHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteDelivery(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Delivery deleted, stock restored"})
	}
}
