package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

func findMasterItem(st *models.FactoryState, id string) *models.MasterItem {
	for i := range st.MasterItems {
		if st.MasterItems[i].ID == id {
			return &st.MasterItems[i]
		}
	}
	return nil
}

// ReceivingCommand books raw material into the unissued pool. An empty ID
// creates a new ledger entry; a set ID edits the existing one.
type ReceivingCommand struct {
	ID         string
	Date       string
	MaterialID string
	Kg         float64
	Actor      string
}

func (e *Engine) SubmitReceiving(cmd ReceivingCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.MaterialID == "" {
		missing = append(missing, "Raw Material")
	}
	if cmd.Kg <= 0 {
		missing = append(missing, "Quantity (kg)")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	kg := quantity.Kg(cmd.Kg)
	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findReceiving(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "receiving entry", ID: cmd.ID}
			}
			if err := applyRawMaterialDelta(st, old.MaterialID, -old.Kg, 0); err != nil {
				return err
			}
			removeReceiving(st, cmd.ID)
		}

		material := findMasterItem(st, cmd.MaterialID)
		if material == nil {
			return &NotFoundError{Kind: "raw material", ID: cmd.MaterialID}
		}
		if err := applyRawMaterialDelta(st, cmd.MaterialID, kg, 0); err != nil {
			return err
		}

		entry := models.ReceivingEntry{ID: id, MaterialID: cmd.MaterialID, Kg: kg, Date: cmd.Date}
		st.ReceivingLogs = append([]models.ReceivingEntry{entry}, st.ReceivingLogs...)
		appendAudit(st, "Raw Material", submitAction(cmd.ID), "",
			fmt.Sprintf("RECEIVING processed: %.3fkg of %s", kg, material.Name), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteReceiving(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findReceiving(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "receiving entry", ID: id}
		}
		if err := applyRawMaterialDelta(st, entry.MaterialID, -entry.Kg, 0); err != nil {
			return err
		}
		removeReceiving(st, id)
		appendAudit(st, "Raw Material", models.AuditActionDelete, id, "Deleted RECEIVING record.", actor)
		return nil
	})
}

// IssueCommand moves raw material from the unissued pool to the issued pool,
// reserving it for pre-expanding.
type IssueCommand struct {
	ID         string
	Date       string
	MaterialID string
	Kg         float64
	Actor      string
}

func (e *Engine) SubmitIssue(cmd IssueCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.MaterialID == "" {
		missing = append(missing, "Raw Material")
	}
	if cmd.Kg <= 0 {
		missing = append(missing, "Quantity (kg)")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	kg := quantity.Kg(cmd.Kg)
	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findIssue(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "issue entry", ID: cmd.ID}
			}
			if err := applyRawMaterialDelta(st, old.MaterialID, old.Kg, -old.Kg); err != nil {
				return err
			}
			removeIssue(st, cmd.ID)
		}

		material := findMasterItem(st, cmd.MaterialID)
		if material == nil {
			return &NotFoundError{Kind: "raw material", ID: cmd.MaterialID}
		}
		if err := applyRawMaterialDelta(st, cmd.MaterialID, -kg, kg); err != nil {
			return err
		}

		entry := models.IssueEntry{ID: id, MaterialID: cmd.MaterialID, Kg: kg, Date: cmd.Date}
		st.IssueLogs = append([]models.IssueEntry{entry}, st.IssueLogs...)
		appendAudit(st, "Raw Material", submitAction(cmd.ID), "",
			fmt.Sprintf("ISSUE processed: %.3fkg of %s", kg, material.Name), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteIssue(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findIssue(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "issue entry", ID: id}
		}
		if err := applyRawMaterialDelta(st, entry.MaterialID, entry.Kg, -entry.Kg); err != nil {
			return err
		}
		removeIssue(st, id)
		appendAudit(st, "Raw Material", models.AuditActionDelete, id, "Deleted ISSUE record.", actor)
		return nil
	})
}

func findReceiving(st *models.FactoryState, id string) *models.ReceivingEntry {
	for i := range st.ReceivingLogs {
		if st.ReceivingLogs[i].ID == id {
			return &st.ReceivingLogs[i]
		}
	}
	return nil
}

func removeReceiving(st *models.FactoryState, id string) {
	out := st.ReceivingLogs[:0]
	for _, l := range st.ReceivingLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.ReceivingLogs = out
}

func findIssue(st *models.FactoryState, id string) *models.IssueEntry {
	for i := range st.IssueLogs {
		if st.IssueLogs[i].ID == id {
			return &st.IssueLogs[i]
		}
	}
	return nil
}

func removeIssue(st *models.FactoryState, id string) {
	out := st.IssueLogs[:0]
	for _, l := range st.IssueLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.IssueLogs = out
}
