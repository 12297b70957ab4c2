package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// FGOpeningValue is one item's absolute opening stock.
type FGOpeningValue struct {
	Pieces int
	Weight float64 // kg
}

// SetFinishedGoodsOpening sets absolute opening stock for the given items.
// One-shot: refused once the latch is set or any production record exists.
func (e *Engine) SetFinishedGoodsOpening(values map[string]FGOpeningValue, actor string) error {
	for itemID, v := range values {
		if v.Pieces < 0 || v.Weight < 0 {
			return &ValidationError{Fields: []string{fmt.Sprintf("Opening stock for %s", itemID)}}
		}
	}

	return e.mutate(func(st *models.FactoryState) error {
		if st.FGOpeningSet || len(st.ProductionLogs) > 0 {
			return &AlreadyInitializedError{Pool: "finished goods"}
		}
		for itemID, v := range values {
			stock := findFGStock(st, itemID)
			if stock == nil {
				return &NotFoundError{Kind: "finished goods stock", ID: itemID}
			}
			stock.StockPieces = v.Pieces
			stock.TotalWeight = quantity.Kg(v.Weight)
		}
		st.FGOpeningSet = true
		appendAudit(st, "Finished Goods", models.AuditActionAdjust, "", "Opening stock set", actor)
		return nil
	})
}

// FGAdjustCommand applies a signed manual piece correction to one item.
type FGAdjustCommand struct {
	Date   string
	ItemID string
	Qty    int // signed pieces
	Reason string
	Actor  string
}

func (e *Engine) AdjustFinishedGoods(cmd FGAdjustCommand) error {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.ItemID == "" {
		missing = append(missing, "Item")
	}
	if cmd.Qty == 0 {
		missing = append(missing, "Quantity (pcs)")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return e.mutate(func(st *models.FactoryState) error {
		item := findMasterItem(st, cmd.ItemID)
		if item == nil {
			return &NotFoundError{Kind: "finished goods item", ID: cmd.ItemID}
		}
		stock := findFGStock(st, cmd.ItemID)
		if stock == nil {
			return &NotFoundError{Kind: "finished goods stock", ID: cmd.ItemID}
		}
		before := stock.StockPieces
		if err := applyFGDelta(st, cmd.ItemID, cmd.Qty, 0); err != nil {
			return err
		}
		appendAudit(st, "Finished Goods", models.AuditActionAdjust,
			fmt.Sprintf("%d", before),
			fmt.Sprintf("Adjustment Log: %d pcs of %s on %s", cmd.Qty, item.Name, cmd.Date), cmd.Actor)
		return nil
	})
}
