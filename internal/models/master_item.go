package models

type ItemCategory string

const (
	CategoryFinishedGoods ItemCategory = "Finished Goods"
	CategoryRawMaterial   ItemCategory = "Raw Material"
	CategoryOperator      ItemCategory = "Operator"
	CategoryMachine       ItemCategory = "Production Machine"
)

// LargeBeadsItemID is the pseudo item id used by delivery entries that ship
// loose large beads straight out of Silo 5 instead of counted finished goods.
const LargeBeadsItemID = "large_beads"

type MasterItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	UOM      string       `json:"uom,omitempty"`
}
