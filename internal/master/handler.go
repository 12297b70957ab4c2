package master

import (
	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/web"

	"github.com/gofiber/fiber/v2"
)

type CreateItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"` // "Finished Goods" | "Raw Material" | "Operator" | "Production Machine"
}

// GET /api/master-items?category=Raw%20Material
func ListItemsHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := e.Snapshot()
		category := c.Query("category")

		if category == "" {
			return c.JSON(st.MasterItems)
		}
		items := make([]models.MasterItem, 0, len(st.MasterItems))
		for _, item := range st.MasterItems {
			if string(item.Category) == category {
				items = append(items, item)
			}
		}
		return c.JSON(items)
	}
}

// POST /api/master-items
func CreateItemHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		id, err := e.AddMasterItem(engine.MasterItemCommand{
			Name:     body.Name,
			Category: models.ItemCategory(body.Category),
			Actor:    auth.Actor(c),
		})
		if err != nil {
			return web.Error(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// DELETE /api/master-items/:id, refused while ledger records reference it.
func DeleteItemHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := e.DeleteMasterItem(c.Params("id"), auth.Actor(c)); err != nil {
			return web.Error(err)
		}
		return c.JSON(fiber.Map{"message": "Item removed"})
	}
}
