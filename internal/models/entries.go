package models

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

// Ledger records. Each is immutable once created: edits replace the record
// wholesale after its original stock effect has been reversed, deletes remove
// it. Derived fields (DryWeight, TotalProdWeight, ...) are fixed at write time
// and are the authoritative record of what happened; they are never recomputed
// from other tables later.

type ReceivingEntry struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"materialId"`
	Kg         float64 `json:"kg"`
	Date       string  `json:"date"`
}

type IssueEntry struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"materialId"`
	Kg         float64 `json:"kg"`
	Date       string  `json:"date"`
}

type PreExpandingEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Shift        Shift   `json:"shift"`
	Machine      string  `json:"machine"`
	MaterialID   string  `json:"materialId"`
	OperatorID   string  `json:"operatorId"`
	QuantityKg   float64 `json:"quantityKg"`
	OutputSiloID int     `json:"outputSiloId"`
}

type SecondExpandingEntry struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Shift      Shift   `json:"shift"`
	OperatorID string  `json:"operatorId"`
	QuantityKg float64 `json:"quantityKg"`
	DestSiloID int     `json:"destSiloId"` // 5 or 7
}

// ProductionEntry covers both standard finished-goods production and the
// large-beads variant. For large beads the piece fields and DryWeight stay
// zero and TotalProdWeight is the kg moved from Silo 10 to Silo 5.
type ProductionEntry struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Shift           Shift   `json:"shift"`
	MachineID       string  `json:"machineId"`
	OperatorID      string  `json:"operatorId"`
	SiloID          int     `json:"siloId"`
	ItemID          string  `json:"itemId"`
	IsLargeBeads    bool    `json:"isLargeBeads"`
	TotalQty        float64 `json:"totalQty"`   // pieces (standard) or kg (large beads)
	GoodQty         int     `json:"goodQty"`    // pieces
	DamagedQty      int     `json:"damagedQty"` // pieces
	AvgWetWeight    float64 `json:"avgWetWeight"`
	DryWeight       float64 `json:"dryWeight"` // AvgWetWeight * 0.94, 0 for large beads
	TotalProdWeight float64 `json:"totalProdWeight"`
	DamagedWeight   float64 `json:"damagedWeight"`
}

type DeliveryEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	ItemID   string  `json:"itemId"` // LargeBeadsItemID or a master item id
	ItemName string  `json:"itemName"`
	Quantity float64 `json:"quantity"` // kg for large beads, whole pieces otherwise
	Unit     string  `json:"unit"`     // "Kg" or "Nos"
	Source   string  `json:"source"`
	Remarks  string  `json:"remarks,omitempty"`
}

// FuelEntry is a pure record: it never touches stock pools.
type FuelEntry struct {
	ID                    string  `json:"id"`
	Date                  string  `json:"date"`
	Shift                 Shift   `json:"shift"`
	Opening               float64 `json:"opening"`
	Purchased             float64 `json:"purchased"`
	Closing               float64 `json:"closing"`
	Used                  float64 `json:"used"` // opening + purchased - closing
	TotalProdWeightOnDate float64 `json:"totalProdWeightOnDate"`
}
