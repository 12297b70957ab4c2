package models

const (
	// TotalSilos is fixed: the plant has 11 silos, created once and never deleted.
	TotalSilos = 11

	// MaxSiloCapacity is the hard ceiling of every silo in kg.
	MaxSiloCapacity = 600.0

	// DryWeightRatio converts average wet piece weight to dry weight.
	DryWeightRatio = 0.94

	// TargetFuelRatio is the plant target in litres of fuel per kg produced.
	TargetFuelRatio = 0.025
)

type SiloType string

const (
	SiloNormal          SiloType = "Normal"
	SiloProductionReady SiloType = "Production Ready"
	SiloIntermediate    SiloType = "Intermediate"
)

const (
	// SiloIDProductionReady is Silo 5: destination of second expanding and
	// large-beads production, source of large-beads deliveries.
	SiloIDProductionReady = 5
	// SiloIDIntermediate is Silo 10: the only source of second expanding and
	// large-beads production.
	SiloIDIntermediate = 10
)

// Silo holds one material at a time. MaterialName is the last known occupant
// and is only overwritten by inbound transfers, never cleared by reversals.
type Silo struct {
	ID           int      `json:"id"`
	CurrentStock float64  `json:"currentStock"` // kg, always within [0, MaxSiloCapacity]
	MaterialName string   `json:"materialName"`
	Type         SiloType `json:"type"`
}

// RawMaterialStock tracks one raw-material master item. Kg is on hand and
// unissued; IssuedKg has been issued to the floor but not yet pre-expanded.
type RawMaterialStock struct {
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	Kg           float64 `json:"kg"`
	IssuedKg     float64 `json:"issuedKg"`
}

type FinishedGoodsStock struct {
	ItemID      string  `json:"itemId"`
	StockPieces int     `json:"stockPieces"`
	TotalWeight float64 `json:"totalWeight"` // kg
}

// SiloTypeFor returns the production-stage role of a silo id.
func SiloTypeFor(id int) SiloType {
	switch id {
	case SiloIDProductionReady:
		return SiloProductionReady
	case SiloIDIntermediate:
		return SiloIntermediate
	default:
		return SiloNormal
	}
}
