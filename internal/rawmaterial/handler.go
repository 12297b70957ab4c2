package rawmaterial

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type EntryRequest struct {
	Date       string  `json:"date"` // "2025-12-09"
	MaterialID string  `json:"material_id"`
	Kg         float64 `json:"kg"`
}

// POST /api/receivings
func CreateReceivingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitReceiving(engine.ReceivingCommand{
			Date:       body.Date,
			MaterialID: body.MaterialID,
			Kg:         body.Kg,
			Actor:      auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/receivings/:id
func UpdateReceivingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitReceiving(engine.ReceivingCommand{
			ID:         c.Params("id"),
			Date:       body.Date,
			MaterialID: body.MaterialID,
			Kg:         body.Kg,
			Actor:      auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/receivings/:id
func DeleteReceivingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteReceiving(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted, stock reversed"})
	}
}

// POST /api/issues
func CreateIssueHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitIssue(engine.IssueCommand{
			Date:       body.Date,
			MaterialID: body.MaterialID,
			Kg:         body.Kg,
			Actor:      auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/issues/:id
func UpdateIssueHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitIssue(engine.IssueCommand{
			ID:         c.Params("id"),
			Date:       body.Date,
			MaterialID: body.MaterialID,
			Kg:         body.Kg,
			Actor:      auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/issues/:id
func DeleteIssueHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteIssue(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted, stock reversed"})
	}
}
