package report

import (
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"

	"github.com/gofiber/fiber/v2"
)

// GET /api/state returns the full snapshot the frontend renders from.
func StateHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(e.Snapshot())
	}
}

// GET /api/audit-logs?module=Production
func ListAuditLogsHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := e.Snapshot()
		module := c.Query("module")

		if module == "" {
			return c.JSON(st.AuditLogs)
		}
		logs := make([]models.AuditLog, 0, len(st.AuditLogs))
		for _, l := range st.AuditLogs {
			if l.Module == module {
				logs = append(logs, l)
			}
		}
		return c.JSON(logs)
	}
}

type EfficiencyResponse struct {
	Date             string  `json:"date,omitempty"`
	GoodPieces       int     `json:"good_pieces"`
	DamagedPieces    int     `json:"damaged_pieces"`
	PieceEfficiency  float64 `json:"piece_efficiency"`  // %
	TotalProdWeight  float64 `json:"total_prod_weight"` // kg, large beads included
	RawMaterialUsed  float64 `json:"raw_material_used"` // kg pre-expanded
	WeightEfficiency float64 `json:"weight_efficiency"` // %
	FuelUsed         float64 `json:"fuel_used"`         // L
	FuelRatio        float64 `json:"fuel_ratio"`        // L/kg
	TargetFuelRatio  float64 `json:"target_fuel_ratio"`
}

// GET /api/reports/efficiency?date=2025-12-09. Omit date for all-time totals.
// Piece efficiency excludes the large-beads variant; weight efficiency and the
// fuel ratio include it.
func EfficiencyHandler(e *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := e.Snapshot()
		date := c.Query("date")

		resp := EfficiencyResponse{Date: date, TargetFuelRatio: models.TargetFuelRatio}

		for _, l := range st.ProductionLogs {
			if date != "" && l.Date != date {
				continue
			}
			resp.TotalProdWeight = quantity.AddKg(resp.TotalProdWeight, l.TotalProdWeight)
			if !l.IsLargeBeads {
				resp.GoodPieces += l.GoodQty
				resp.DamagedPieces += l.DamagedQty
			}
		}
		for _, l := range st.PreExpandingLogs {
			if date != "" && l.Date != date {
				continue
			}
			resp.RawMaterialUsed = quantity.AddKg(resp.RawMaterialUsed, l.QuantityKg)
		}
		for _, l := range st.FuelLogs {
			if date != "" && l.Date != date {
				continue
			}
			resp.FuelUsed = quantity.AddKg(resp.FuelUsed, l.Used)
		}

		if total := resp.GoodPieces + resp.DamagedPieces; total > 0 {
			resp.PieceEfficiency = float64(resp.GoodPieces) / float64(total) * 100
		}
		if resp.RawMaterialUsed > 0 {
			resp.WeightEfficiency = resp.TotalProdWeight / resp.RawMaterialUsed * 100
		}
		if resp.TotalProdWeight > 0 {
			resp.FuelRatio = resp.FuelUsed / resp.TotalProdWeight
		}

		return c.JSON(resp)
	}
}
