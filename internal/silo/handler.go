package silo

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type SecondExpandingRequest struct {
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	OperatorID string  `json:"operator_id"`
	QuantityKg float64 `json:"quantity_kg"`
	DestSiloID int     `json:"dest_silo_id"` // 5 or 7
}

func (r SecondExpandingRequest) command(id, actor string) engine.SecondExpandingCommand {
	return engine.SecondExpandingCommand{
		ID:         id,
		Date:       r.Date,
		Shift:      models.Shift(r.Shift),
		OperatorID: r.OperatorID,
		QuantityKg: r.QuantityKg,
		DestSiloID: r.DestSiloID,
		Actor:      actor,
	}
}

// POST /api/second-expandings
func CreateSecondExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SecondExpandingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitSecondExpanding(body.command("", auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/second-expandings/:id
func UpdateSecondExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SecondExpandingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.SubmitSecondExpanding(body.command(c.Params("id"), auth.Actor(c)))
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/second-expandings/:id
func DeleteSecondExpandingHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteSecondExpanding(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted, stock reversed"})
	}
}

type OpeningRequest struct {
	Values map[int]float64 `json:"values"` // silo id -> kg
}

// POST /api/silos/opening. One-shot opening stock, blocked once latched.
func SetOpeningHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpeningRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := e.SetSiloOpening(body.Values, auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Opening silo stock set"})
	}
}

type AdjustRequest struct {
	Date   string  `json:"date"`
	SiloID int     `json:"silo_id"`
	Qty    float64 `json:"qty"` // signed kg
	Reason string  `json:"reason"`
}

// POST /api/silos/adjust
func AdjustHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		err := e.AdjustSilo(engine.SiloAdjustCommand{
			Date:   body.Date,
			SiloID: body.SiloID,
			Qty:    body.Qty,
			Reason: body.Reason,
			Actor:  auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Stock adjusted"})
	}
}
