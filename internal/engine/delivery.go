package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// DeliveryCommand ships finished goods (whole pieces) or loose large beads
// (kg straight out of Silo 5, ItemID = models.LargeBeadsItemID).
type DeliveryCommand struct {
	ID       string
	Date     string
	ItemID   string
	Quantity float64
	Remarks  string
	Actor    string
}

func (e *Engine) SubmitDelivery(cmd DeliveryCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.ItemID == "" {
		missing = append(missing, "Item")
	}
	isLargeBeads := cmd.ItemID == models.LargeBeadsItemID

	var qty float64
	var pieces int
	if isLargeBeads {
		qty = quantity.Kg(cmd.Quantity)
		if qty <= 0 {
			missing = append(missing, "Quantity (Kg)")
		}
	} else {
		pieces = quantity.Pieces(cmd.Quantity)
		qty = float64(pieces)
		if pieces <= 0 {
			missing = append(missing, "Quantity (Nos)")
		}
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findDelivery(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "delivery entry", ID: cmd.ID}
			}
			if err := reverseDelivery(st, old); err != nil {
				return err
			}
			removeDelivery(st, cmd.ID)
		}

		itemName := "Large Beads"
		unit := "Kg"
		source := "Silo 5"
		if isLargeBeads {
			if err := applySiloDelta(st, models.SiloIDProductionReady, -qty); err != nil {
				return err
			}
		} else {
			item := findMasterItem(st, cmd.ItemID)
			if item == nil {
				return &NotFoundError{Kind: "finished goods item", ID: cmd.ItemID}
			}
			itemName = item.Name
			unit = "Nos"
			source = "Finished Goods Stock"
			if err := applyFGDelta(st, cmd.ItemID, -pieces, 0); err != nil {
				return err
			}
		}

		entry := models.DeliveryEntry{
			ID:       id,
			Date:     cmd.Date,
			ItemID:   cmd.ItemID,
			ItemName: itemName,
			Quantity: qty,
			Unit:     unit,
			Source:   source,
			Remarks:  cmd.Remarks,
		}
		st.DeliveryLogs = append([]models.DeliveryEntry{entry}, st.DeliveryLogs...)
		appendAudit(st, "Delivery", submitAction(cmd.ID), "",
			fmt.Sprintf("Delivered %g %s of %s", qty, unit, itemName), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteDelivery(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findDelivery(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "delivery entry", ID: id}
		}
		if err := reverseDelivery(st, entry); err != nil {
			return err
		}
		removeDelivery(st, id)
		appendAudit(st, "Delivery", models.AuditActionDelete, id, "Deleted delivery and restored stock.", actor)
		return nil
	})
}

func reverseDelivery(st *models.FactoryState, entry *models.DeliveryEntry) error {
	if entry.ItemID == models.LargeBeadsItemID {
		return applySiloDelta(st, models.SiloIDProductionReady, entry.Quantity)
	}
	return applyFGDelta(st, entry.ItemID, int(entry.Quantity), 0)
}

func findDelivery(st *models.FactoryState, id string) *models.DeliveryEntry {
	for i := range st.DeliveryLogs {
		if st.DeliveryLogs[i].ID == id {
			return &st.DeliveryLogs[i]
		}
	}
	return nil
}

func removeDelivery(st *models.FactoryState, id string) {
	out := st.DeliveryLogs[:0]
	for _, l := range st.DeliveryLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.DeliveryLogs = out
}
