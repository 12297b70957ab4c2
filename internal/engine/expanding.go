package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// PreExpandingCommand converts issued raw material into expanded material
// stored in an output silo.
type PreExpandingCommand struct {
	ID           string
	Date         string
	Shift        models.Shift
	Machine      string
	MaterialID   string
	OperatorID   string
	QuantityKg   float64
	OutputSiloID int
	Actor        string
}

func (e *Engine) SubmitPreExpanding(cmd PreExpandingCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.Shift == "" {
		missing = append(missing, "Shift")
	}
	if cmd.MaterialID == "" {
		missing = append(missing, "Raw Material")
	}
	if cmd.OperatorID == "" {
		missing = append(missing, "Operator")
	}
	if cmd.QuantityKg <= 0 {
		missing = append(missing, "Quantity (kg)")
	}
	if cmd.OutputSiloID < 1 || cmd.OutputSiloID > models.TotalSilos {
		missing = append(missing, "Output Silo")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	qty := quantity.Kg(cmd.QuantityKg)
	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findPreExpanding(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "pre-expanding entry", ID: cmd.ID}
			}
			if err := applyRawMaterialDelta(st, old.MaterialID, 0, old.QuantityKg); err != nil {
				return err
			}
			if err := applySiloDelta(st, old.OutputSiloID, -old.QuantityKg); err != nil {
				return err
			}
			removePreExpanding(st, cmd.ID)
		}

		material := findMasterItem(st, cmd.MaterialID)
		if material == nil {
			return &NotFoundError{Kind: "raw material", ID: cmd.MaterialID}
		}
		if err := applySiloDelta(st, cmd.OutputSiloID, qty); err != nil {
			return err
		}
		if err := applyRawMaterialDelta(st, cmd.MaterialID, 0, -qty); err != nil {
			return err
		}
		setSiloMaterial(st, cmd.OutputSiloID, material.Name)

		entry := models.PreExpandingEntry{
			ID:           id,
			Date:         cmd.Date,
			Shift:        cmd.Shift,
			Machine:      cmd.Machine,
			MaterialID:   cmd.MaterialID,
			OperatorID:   cmd.OperatorID,
			QuantityKg:   qty,
			OutputSiloID: cmd.OutputSiloID,
		}
		st.PreExpandingLogs = append([]models.PreExpandingEntry{entry}, st.PreExpandingLogs...)
		appendAudit(st, "Pre Expanding", submitAction(cmd.ID), "",
			fmt.Sprintf("Pre-expanded %.3fkg into Silo %d", qty, cmd.OutputSiloID), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeletePreExpanding(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findPreExpanding(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "pre-expanding entry", ID: id}
		}
		if err := applyRawMaterialDelta(st, entry.MaterialID, 0, entry.QuantityKg); err != nil {
			return err
		}
		if err := applySiloDelta(st, entry.OutputSiloID, -entry.QuantityKg); err != nil {
			return err
		}
		removePreExpanding(st, id)
		appendAudit(st, "Pre Expanding", models.AuditActionDelete, id, "Deleted record and reversed stock.", actor)
		return nil
	})
}

// SecondExpandingCommand moves expanded material from Silo 10 into Silo 5 or 7
// without consuming raw material.
type SecondExpandingCommand struct {
	ID         string
	Date       string
	Shift      models.Shift
	OperatorID string
	QuantityKg float64
	DestSiloID int
	Actor      string
}

func (e *Engine) SubmitSecondExpanding(cmd SecondExpandingCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.QuantityKg <= 0 {
		missing = append(missing, "Quantity (kg)")
	}
	if cmd.DestSiloID != models.SiloIDProductionReady && cmd.DestSiloID != 7 {
		missing = append(missing, "Destination Silo")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	qty := quantity.Kg(cmd.QuantityKg)
	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			old := findSecondExpanding(st, cmd.ID)
			if old == nil {
				return &NotFoundError{Kind: "second-expanding entry", ID: cmd.ID}
			}
			if err := applySiloDelta(st, models.SiloIDIntermediate, old.QuantityKg); err != nil {
				return err
			}
			if err := applySiloDelta(st, old.DestSiloID, -old.QuantityKg); err != nil {
				return err
			}
			removeSecondExpanding(st, cmd.ID)
		}

		source := findSilo(st, models.SiloIDIntermediate)
		if source == nil {
			return &NotFoundError{Kind: "silo", ID: "10"}
		}
		sourceMaterial := source.MaterialName
		if err := applySiloDelta(st, models.SiloIDIntermediate, -qty); err != nil {
			return err
		}
		if err := applySiloDelta(st, cmd.DestSiloID, qty); err != nil {
			return err
		}
		setSiloMaterial(st, cmd.DestSiloID, sourceMaterial)

		entry := models.SecondExpandingEntry{
			ID:         id,
			Date:       cmd.Date,
			Shift:      cmd.Shift,
			OperatorID: cmd.OperatorID,
			QuantityKg: qty,
			DestSiloID: cmd.DestSiloID,
		}
		st.SecondExpandingLogs = append([]models.SecondExpandingEntry{entry}, st.SecondExpandingLogs...)
		appendAudit(st, "Silo Management", submitAction(cmd.ID), "",
			fmt.Sprintf("Exp: %.3fkg S10 -> S%d", qty, cmd.DestSiloID), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteSecondExpanding(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		entry := findSecondExpanding(st, id)
		if entry == nil {
			return &NotFoundError{Kind: "second-expanding entry", ID: id}
		}
		if err := applySiloDelta(st, models.SiloIDIntermediate, entry.QuantityKg); err != nil {
			return err
		}
		if err := applySiloDelta(st, entry.DestSiloID, -entry.QuantityKg); err != nil {
			return err
		}
		removeSecondExpanding(st, id)
		appendAudit(st, "Silo Management", models.AuditActionDelete, id, "Reversed Expansion", actor)
		return nil
	})
}

func findPreExpanding(st *models.FactoryState, id string) *models.PreExpandingEntry {
	for i := range st.PreExpandingLogs {
		if st.PreExpandingLogs[i].ID == id {
			return &st.PreExpandingLogs[i]
		}
	}
	return nil
}

func removePreExpanding(st *models.FactoryState, id string) {
	out := st.PreExpandingLogs[:0]
	for _, l := range st.PreExpandingLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.PreExpandingLogs = out
}

func findSecondExpanding(st *models.FactoryState, id string) *models.SecondExpandingEntry {
	for i := range st.SecondExpandingLogs {
		if st.SecondExpandingLogs[i].ID == id {
			return &st.SecondExpandingLogs[i]
		}
	}
	return nil
}

func removeSecondExpanding(st *models.FactoryState, id string) {
	out := st.SecondExpandingLogs[:0]
	for _, l := range st.SecondExpandingLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.SecondExpandingLogs = out
}
