package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// SetSiloOpening sets the absolute opening stock of every silo, clamped to
// [0, 600]. One-shot: the latch permanently blocks a second call.
func (e *Engine) SetSiloOpening(values map[int]float64, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		if st.SiloOpeningSet {
			return &AlreadyInitializedError{Pool: "silo"}
		}
		for i := range st.Silos {
			v := quantity.Kg(values[st.Silos[i].ID])
			if v < 0 {
				v = 0
			}
			if v > models.MaxSiloCapacity {
				v = models.MaxSiloCapacity
			}
			st.Silos[i].CurrentStock = v
		}
		st.SiloOpeningSet = true
		appendAudit(st, "Silo Management", models.AuditActionAdjust, "", "Opening Silo Stock Set", actor)
		return nil
	})
}

// SiloAdjustCommand applies a signed manual correction to one silo.
type SiloAdjustCommand struct {
	Date   string
	SiloID int
	Qty    float64 // signed kg
	Reason string
	Actor  string
}

func (e *Engine) AdjustSilo(cmd SiloAdjustCommand) error {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.SiloID < 1 || cmd.SiloID > models.TotalSilos {
		missing = append(missing, "Silo")
	}
	if cmd.Qty == 0 {
		missing = append(missing, "Quantity (kg)")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	qty := quantity.Kg(cmd.Qty)

	return e.mutate(func(st *models.FactoryState) error {
		silo := findSilo(st, cmd.SiloID)
		if silo == nil {
			return &NotFoundError{Kind: "silo", ID: fmt.Sprintf("%d", cmd.SiloID)}
		}
		before := silo.CurrentStock
		if err := applySiloDelta(st, cmd.SiloID, qty); err != nil {
			return err
		}
		appendAudit(st, "Silo Management", models.AuditActionAdjust,
			fmt.Sprintf("%.3f", before),
			fmt.Sprintf("Manual Adjustment: %.3fkg on %s", qty, cmd.Date), cmd.Actor)
		return nil
	})
}
