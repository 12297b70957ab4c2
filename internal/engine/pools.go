package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// Stock pool access. Every delta is applied through one of these helpers and
// each helper rejects any write whose result would breach its pool invariant
// (silo capacity ceiling, non-negativity everywhere). Rejection leaves the
// pool untouched; the caller aborts the whole command, so reversal and
// forward apply stay one atomic unit.

func findSilo(st *models.FactoryState, id int) *models.Silo {
	for i := range st.Silos {
		if st.Silos[i].ID == id {
			return &st.Silos[i]
		}
	}
	return nil
}

func findRawMaterial(st *models.FactoryState, materialID string) *models.RawMaterialStock {
	for i := range st.RawMaterialStock {
		if st.RawMaterialStock[i].MaterialID == materialID {
			return &st.RawMaterialStock[i]
		}
	}
	return nil
}

func findFGStock(st *models.FactoryState, itemID string) *models.FinishedGoodsStock {
	for i := range st.FGStock {
		if st.FGStock[i].ItemID == itemID {
			return &st.FGStock[i]
		}
	}
	return nil
}

// applySiloDelta moves deltaKg in or out of a silo, enforcing 0 <= stock <= 600.
func applySiloDelta(st *models.FactoryState, siloID int, deltaKg float64) error {
	silo := findSilo(st, siloID)
	if silo == nil {
		return &NotFoundError{Kind: "silo", ID: fmt.Sprintf("%d", siloID)}
	}
	next := quantity.AddKg(silo.CurrentStock, deltaKg)
	if next < 0 {
		return &InsufficientStockError{
			Source:    fmt.Sprintf("Silo %d", siloID),
			Available: silo.CurrentStock,
			Requested: -deltaKg,
			Unit:      "kg",
		}
	}
	if next > models.MaxSiloCapacity {
		return &CapacityExceededError{SiloID: siloID, Current: silo.CurrentStock, Requested: deltaKg}
	}
	silo.CurrentStock = next
	return nil
}

// setSiloMaterial records the silo's occupant after an inbound transfer.
func setSiloMaterial(st *models.FactoryState, siloID int, materialName string) {
	if silo := findSilo(st, siloID); silo != nil {
		silo.MaterialName = materialName
	}
}

// applyRawMaterialDelta moves deltaKg on the unissued pool and deltaIssuedKg
// on the issued pool of one material, both non-negative after the write.
func applyRawMaterialDelta(st *models.FactoryState, materialID string, deltaKg, deltaIssuedKg float64) error {
	stock := findRawMaterial(st, materialID)
	if stock == nil {
		return &NotFoundError{Kind: "raw material stock", ID: materialID}
	}
	nextKg := quantity.AddKg(stock.Kg, deltaKg)
	if nextKg < 0 {
		return &InsufficientStockError{
			Source:    stock.MaterialName,
			Available: stock.Kg,
			Requested: -deltaKg,
			Unit:      "kg",
		}
	}
	nextIssued := quantity.AddKg(stock.IssuedKg, deltaIssuedKg)
	if nextIssued < 0 {
		return &InsufficientStockError{
			Source:    stock.MaterialName + " (issued)",
			Available: stock.IssuedKg,
			Requested: -deltaIssuedKg,
			Unit:      "kg",
		}
	}
	stock.Kg = nextKg
	stock.IssuedKg = nextIssued
	return nil
}

// applyFGDelta moves pieces and weight on a finished-goods stock row.
func applyFGDelta(st *models.FactoryState, itemID string, deltaPieces int, deltaWeight float64) error {
	stock := findFGStock(st, itemID)
	if stock == nil {
		return &NotFoundError{Kind: "finished goods stock", ID: itemID}
	}
	nextPieces := stock.StockPieces + deltaPieces
	if nextPieces < 0 {
		return &InsufficientStockError{
			Source:    itemID,
			Available: float64(stock.StockPieces),
			Requested: float64(-deltaPieces),
			Unit:      "pcs",
		}
	}
	nextWeight := quantity.AddKg(stock.TotalWeight, deltaWeight)
	if nextWeight < 0 {
		return &InsufficientStockError{
			Source:    itemID + " (weight)",
			Available: stock.TotalWeight,
			Requested: -deltaWeight,
			Unit:      "kg",
		}
	}
	stock.StockPieces = nextPieces
	stock.TotalWeight = nextWeight
	return nil
}
