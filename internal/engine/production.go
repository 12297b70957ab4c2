package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// ProductionCommand records one production run. Standard runs consume
// expanded material from a source silo and book counted finished goods;
// the large-beads variant moves weight from Silo 10 straight into Silo 5
// and never touches finished-goods stock or dry-weight math.
type ProductionCommand struct {
	ID           string
	Date         string
	Shift        models.Shift
	MachineID    string
	OperatorID   string
	SiloID       int
	ItemID       string
	IsLargeBeads bool
	TotalQty     float64 // pieces (standard) or kg (large beads)
	DamagedQty   int
	AvgWetWeight float64
	Actor        string
}

func (e *Engine) SubmitProduction(cmd ProductionCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.OperatorID == "" {
		missing = append(missing, "Operator")
	}
	if cmd.IsLargeBeads {
		if cmd.TotalQty <= 0 {
			missing = append(missing, "Total Quantity (Kg)")
		}
	} else {
		if cmd.MachineID == "" {
			missing = append(missing, "Machine")
		}
		if cmd.ItemID == "" {
			missing = append(missing, "Item")
		}
		if cmd.TotalQty <= 0 {
			missing = append(missing, "Total Quantity (Pieces)")
		}
		if cmd.DamagedQty < 0 || float64(cmd.DamagedQty) > cmd.TotalQty {
			missing = append(missing, "Damaged Quantity")
		}
		if cmd.AvgWetWeight < 0 {
			missing = append(missing, "Avg Wet Weight")
		}
		if cmd.SiloID < 1 || cmd.SiloID > models.TotalSilos {
			missing = append(missing, "Source Silo")
		}
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	// Derived fields are fixed here and never recomputed later.
	var (
		totalQty        float64
		goodQty         int
		dryWeight       float64
		totalProdWeight float64
		damagedWeight   float64
	)
	if cmd.IsLargeBeads {
		totalQty = quantity.Kg(cmd.TotalQty)
		totalProdWeight = totalQty
	} else {
		pcs := quantity.Pieces(cmd.TotalQty)
		totalQty = float64(pcs)
		goodQty = pcs - cmd.DamagedQty
		if goodQty < 0 {
			goodQty = 0
		}
		dryWeight = quantity.MulKg(cmd.AvgWetWeight, models.DryWeightRatio)
		totalProdWeight = quantity.MulKg(totalQty, dryWeight)
		damagedWeight = quantity.MulKg(float64(cmd.DamagedQty), dryWeight)
	}

	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findProduction(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "production entry", ID: cmd.ID}
			}
			if err := reverseProduction(st, old); err != nil {
				return err
			}
			removeProduction(st, cmd.ID)
		}

		entry := models.ProductionEntry{
			ID:              id,
			Date:            cmd.Date,
			Shift:           cmd.Shift,
			OperatorID:      cmd.OperatorID,
			IsLargeBeads:    cmd.IsLargeBeads,
			TotalQty:        totalQty,
			GoodQty:         goodQty,
			DryWeight:       dryWeight,
			TotalProdWeight: totalProdWeight,
			DamagedWeight:   damagedWeight,
		}

		if cmd.IsLargeBeads {
			source := findSilo(st, models.SiloIDIntermediate)
			if source == nil {
				return &NotFoundError{Kind: "silo", ID: "10"}
			}
			sourceMaterial := source.MaterialName
			srcBefore := source.CurrentStock
			dest := findSilo(st, models.SiloIDProductionReady)
			if dest == nil {
				return &NotFoundError{Kind: "silo", ID: "5"}
			}
			destBefore := dest.CurrentStock

			if err := applySiloDelta(st, models.SiloIDIntermediate, -totalProdWeight); err != nil {
				return err
			}
			if err := applySiloDelta(st, models.SiloIDProductionReady, totalProdWeight); err != nil {
				return err
			}
			setSiloMaterial(st, models.SiloIDProductionReady, sourceMaterial)

			entry.SiloID = models.SiloIDProductionReady
			appendAudit(st, "Production", submitAction(cmd.ID), "",
				fmt.Sprintf("Large Beads Production: Deducted %.3f Kg from Silo 10 (%.3f -> %.3f), Added to Silo 5 (%.3f -> %.3f)",
					totalProdWeight, srcBefore, quantity.SubKg(srcBefore, totalProdWeight),
					destBefore, quantity.AddKg(destBefore, totalProdWeight)), cmd.Actor)
		} else {
			item := findMasterItem(st, cmd.ItemID)
			if item == nil {
				return &NotFoundError{Kind: "finished goods item", ID: cmd.ItemID}
			}
			if err := applySiloDelta(st, cmd.SiloID, -totalProdWeight); err != nil {
				return err
			}
			if err := applyFGDelta(st, cmd.ItemID, goodQty, quantity.MulKg(float64(goodQty), dryWeight)); err != nil {
				return err
			}

			entry.MachineID = cmd.MachineID
			entry.SiloID = cmd.SiloID
			entry.ItemID = cmd.ItemID
			entry.DamagedQty = cmd.DamagedQty
			entry.AvgWetWeight = cmd.AvgWetWeight
			appendAudit(st, "Production", submitAction(cmd.ID), "",
				fmt.Sprintf("FG Recorded: %d pcs of %s", goodQty, item.Name), cmd.Actor)
		}

		st.ProductionLogs = append([]models.ProductionEntry{entry}, st.ProductionLogs...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteProduction(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findProduction(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "production entry", ID: id}
		}
		variant := "FG"
		if entry.IsLargeBeads {
			variant = "Large Beads"
		}
		if err := reverseProduction(st, entry); err != nil {
			return err
		}
		removeProduction(st, id)
		appendAudit(st, "Production", models.AuditActionDelete, id,
			fmt.Sprintf("Deleted %s and reversed stock movement", variant), actor)
		return nil
	})
}

// reverseProduction applies the exact inverse of a production entry's stock
// effect, using the derived fields recorded on the entry itself.
func reverseProduction(st *models.FactoryState, entry *models.ProductionEntry) error {
	if entry.IsLargeBeads {
		if err := applySiloDelta(st, models.SiloIDProductionReady, -entry.TotalProdWeight); err != nil {
			return err
		}
		return applySiloDelta(st, models.SiloIDIntermediate, entry.TotalProdWeight)
	}
	if err := applySiloDelta(st, entry.SiloID, entry.TotalProdWeight); err != nil {
		return err
	}
	return applyFGDelta(st, entry.ItemID, -entry.GoodQty,
		-quantity.MulKg(float64(entry.GoodQty), entry.DryWeight))
}

func findProduction(st *models.FactoryState, id string) *models.ProductionEntry {
	for i := range st.ProductionLogs {
		if st.ProductionLogs[i].ID == id {
			return &st.ProductionLogs[i]
		}
	}
	return nil
}

func removeProduction(st *models.FactoryState, id string) {
	out := st.ProductionLogs[:0]
	for _, l := range st.ProductionLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.ProductionLogs = out
}
