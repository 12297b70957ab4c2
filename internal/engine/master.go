package engine

import (
	"fmt"
	"strings"

	"factorypro-backend/internal/models"

	"github.com/google/uuid"
)

// MasterItemCommand adds one identity to the master registry. Raw-material
// and finished-goods items get their stock row created alongside.
type MasterItemCommand struct {
	Name     string
	Category models.ItemCategory
	Actor    string
}

func validCategory(c models.ItemCategory) bool {
	switch c {
	case models.CategoryFinishedGoods, models.CategoryRawMaterial,
		models.CategoryOperator, models.CategoryMachine:
		return true
	}
	return false
}

func (e *Engine) AddMasterItem(cmd MasterItemCommand) (string, error) {
	name := strings.TrimSpace(cmd.Name)
	var missing []string
	if name == "" {
		missing = append(missing, "Name")
	}
	if !validCategory(cmd.Category) {
		missing = append(missing, "Category")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	id := uuid.NewString()

	err := e.mutate(func(st *models.FactoryState) error {
		for _, item := range st.MasterItems {
			if item.Category == cmd.Category && strings.EqualFold(item.Name, name) {
				return &ValidationError{Fields: []string{fmt.Sprintf("Name (%q already exists in %s)", name, cmd.Category)}}
			}
		}

		item := models.MasterItem{ID: id, Name: name, Category: cmd.Category}
		if cmd.Category == models.CategoryFinishedGoods {
			item.UOM = "Nos"
		}
		st.MasterItems = append(st.MasterItems, item)

		switch cmd.Category {
		case models.CategoryRawMaterial:
			st.RawMaterialStock = append(st.RawMaterialStock, models.RawMaterialStock{
				MaterialID:   id,
				MaterialName: name,
			})
		case models.CategoryFinishedGoods:
			st.FGStock = append(st.FGStock, models.FinishedGoodsStock{ItemID: id})
		}

		appendAudit(st, "Master Data", models.AuditActionCreate, "",
			fmt.Sprintf("Add %s: %s", cmd.Category, name), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteMasterItem removes a registry identity and its stock row, refused
// with InUse while any ledger record of any type still references the id.
func (e *Engine) DeleteMasterItem(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		item := findMasterItem(st, id)
		if item == nil {
			return &NotFoundError{Kind: "master item", ID: id}
		}
		if masterItemReferenced(st, id) {
			return &InUseError{Name: item.Name}
		}

		name := item.Name
		category := item.Category

		items := st.MasterItems[:0]
		for _, it := range st.MasterItems {
			if it.ID != id {
				items = append(items, it)
			}
		}
		st.MasterItems = items

		rm := st.RawMaterialStock[:0]
		for _, s := range st.RawMaterialStock {
			if s.MaterialID != id {
				rm = append(rm, s)
			}
		}
		st.RawMaterialStock = rm

		fg := st.FGStock[:0]
		for _, s := range st.FGStock {
			if s.ItemID != id {
				fg = append(fg, s)
			}
		}
		st.FGStock = fg

		appendAudit(st, "Master Data", models.AuditActionDelete, id,
			fmt.Sprintf("Removed %s: %s", category, name), actor)
		return nil
	})
}

// masterItemReferenced is the referential-integrity guard: true while any
// ledger record of any type references the id.
func masterItemReferenced(st *models.FactoryState, id string) bool {
	for _, l := range st.ReceivingLogs {
		if l.MaterialID == id {
			return true
		}
	}
	for _, l := range st.IssueLogs {
		if l.MaterialID == id {
			return true
		}
	}
	for _, l := range st.PreExpandingLogs {
		if l.MaterialID == id || l.OperatorID == id {
			return true
		}
	}
	for _, l := range st.SecondExpandingLogs {
		if l.OperatorID == id {
			return true
		}
	}
	for _, l := range st.ProductionLogs {
		if l.ItemID == id || l.OperatorID == id || l.MachineID == id {
			return true
		}
	}
	for _, l := range st.DeliveryLogs {
		if l.ItemID == id {
			return true
		}
	}
	return false
}
