package finishedgoods

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type OpeningValue struct {
	Pieces int     `json:"pcs"`
	Weight float64 `json:"weight"`
}

type OpeningRequest struct {
	Values map[string]OpeningValue `json:"values"` // item id -> opening stock
}

// POST /api/finished-goods/opening. One-shot: blocked once latched or once
// any production record exists.
func SetOpeningHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpeningRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		values := make(map[string]engine.FGOpeningValue, len(body.Values))
		for id, v := range body.Values {
			values[id] = engine.FGOpeningValue{Pieces: v.Pieces, Weight: v.Weight}
		}

		if err := e.SetFinishedGoodsOpening(values, auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Opening stock set"})
	}
}

type AdjustRequest struct {
	Date   string `json:"date"`
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"` // signed pieces
	Reason string `json:"reason"`
}

// POST /api/finished-goods/adjust
func AdjustHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		err := e.AdjustFinishedGoods(engine.FGAdjustCommand{
			Date:   body.Date,
			ItemID: body.ItemID,
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
