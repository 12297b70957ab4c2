package models

import "strings"

// FactoryState is the full snapshot: every stock pool, every ledger, both
// one-time opening latches and the audit trail. The engine treats it as one
// value; readers only ever see deep copies and the persisted document is this
// struct marshalled wholesale.
type FactoryState struct {
	MasterItems         []MasterItem           `json:"masterItems"`
	RawMaterialStock    []RawMaterialStock     `json:"rawMaterialStock"`
	ReceivingLogs       []ReceivingEntry       `json:"receivingLogs"`
	IssueLogs           []IssueEntry           `json:"issueLogs"`
	Silos               []Silo                 `json:"silos"`
	SiloOpeningSet      bool                   `json:"siloOpeningSet"`
	PreExpandingLogs    []PreExpandingEntry    `json:"preExpandingLogs"`
	SecondExpandingLogs []SecondExpandingEntry `json:"secondExpandingLogs"`
	ProductionLogs      []ProductionEntry      `json:"productionLogs"`
	DeliveryLogs        []DeliveryEntry        `json:"deliveryLogs"`
	FGStock             []FinishedGoodsStock   `json:"fgStock"`
	FGOpeningSet        bool                   `json:"fgOpeningSet"`
	FuelLogs            []FuelEntry            `json:"fuelLogs"`
	AuditLogs           []AuditLog             `json:"auditLogs"`
}

// defaultFGNames are the finished-goods items every plant install starts with.
var defaultFGNames = []string{
	"Fish box", "Fish box lid", "STR box", "Special size box (10\")", "Half size box",
	"STR lid", "L pro half", "L pro", "L pro lid", "Mini box", "Mini box lid",
	"Mega box", "Mega lid", "S.S. type box", "S.S type lid", "Half gallon can",
	"One gallon can", "Gallon lid", "G7 floats large", "G7 floats small",
	"7cm diameter ball", "M block", "Normal Hard Block", "S Block",
}

func defaultFGItemID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// DefaultState builds the initial snapshot: 11 empty silos with their fixed
// roles and the default finished-goods catalogue with zeroed stock rows.
func DefaultState() *FactoryState {
	st := &FactoryState{
		MasterItems:         []MasterItem{},
		RawMaterialStock:    []RawMaterialStock{},
		ReceivingLogs:       []ReceivingEntry{},
		IssueLogs:           []IssueEntry{},
		Silos:               make([]Silo, 0, TotalSilos),
		PreExpandingLogs:    []PreExpandingEntry{},
		SecondExpandingLogs: []SecondExpandingEntry{},
		ProductionLogs:      []ProductionEntry{},
		DeliveryLogs:        []DeliveryEntry{},
		FGStock:             []FinishedGoodsStock{},
		FuelLogs:            []FuelEntry{},
		AuditLogs:           []AuditLog{},
	}

	for i := 1; i <= TotalSilos; i++ {
		st.Silos = append(st.Silos, Silo{ID: i, Type: SiloTypeFor(i)})
	}

	for _, name := range defaultFGNames {
		id := defaultFGItemID(name)
		st.MasterItems = append(st.MasterItems, MasterItem{
			ID:       id,
			Name:     name,
			Category: CategoryFinishedGoods,
			UOM:      "Nos",
		})
		st.FGStock = append(st.FGStock, FinishedGoodsStock{ItemID: id})
	}

	return st
}

// EnsureDefaults re-adds any default finished-goods item missing from an
// older snapshot, together with its zero stock row.
func (st *FactoryState) EnsureDefaults() {
	existing := make(map[string]bool, len(st.MasterItems))
	for _, item := range st.MasterItems {
		existing[strings.ToLower(item.Name)] = true
	}
	for _, name := range defaultFGNames {
		if existing[strings.ToLower(name)] {
			continue
		}
		id := defaultFGItemID(name)
		st.MasterItems = append(st.MasterItems, MasterItem{
			ID:       id,
			Name:     name,
			Category: CategoryFinishedGoods,
			UOM:      "Nos",
		})
		st.FGStock = append(st.FGStock, FinishedGoodsStock{ItemID: id})
	}
}

// Clone deep-copies the snapshot. Every slice element is a value type, so
// copying the slices is enough.
func (st *FactoryState) Clone() *FactoryState {
	out := *st
	out.MasterItems = append([]MasterItem(nil), st.MasterItems...)
	out.RawMaterialStock = append([]RawMaterialStock(nil), st.RawMaterialStock...)
	out.ReceivingLogs = append([]ReceivingEntry(nil), st.ReceivingLogs...)
	out.IssueLogs = append([]IssueEntry(nil), st.IssueLogs...)
	out.Silos = append([]Silo(nil), st.Silos...)
	out.PreExpandingLogs = append([]PreExpandingEntry(nil), st.PreExpandingLogs...)
	out.SecondExpandingLogs = append([]SecondExpandingEntry(nil), st.SecondExpandingLogs...)
	out.ProductionLogs = append([]ProductionEntry(nil), st.ProductionLogs...)
	out.DeliveryLogs = append([]DeliveryEntry(nil), st.DeliveryLogs...)
	out.FGStock = append([]FinishedGoodsStock(nil), st.FGStock...)
	out.FuelLogs = append([]FuelEntry(nil), st.FuelLogs...)
	out.AuditLogs = append([]AuditLog(nil), st.AuditLogs...)
	return &out
}
