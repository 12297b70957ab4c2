package engine

import (
	"fmt"

	"factorypro-backend/internal/models"
	"factorypro-backend/internal/quantity"
)

// FuelCommand records diesel consumption for a shift. Fuel entries are pure
// records: they never touch any stock pool, so edits and deletes have no
// reversal step.
type FuelCommand struct {
	ID        string
	Date      string
	Shift     models.Shift
	Opening   float64
	Purchased float64
	Closing   float64
	Actor     string
}

func (e *Engine) SubmitFuel(cmd FuelCommand) (string, error) {
	var missing []string
	if !validDate(cmd.Date) {
		missing = append(missing, "Date")
	}
	if cmd.Opening < 0 || cmd.Purchased < 0 || cmd.Closing < 0 {
		missing = append(missing, "Fuel readings")
	}
	used := quantity.Kg(cmd.Opening + cmd.Purchased - cmd.Closing)
	if used < 0 {
		missing = append(missing, "Closing Balance")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	id := recordID(cmd.ID)

	err := e.mutate(func(st *models.FactoryState) error {
		if cmd.ID != "" {
			if findFuel(st, cmd.ID) == nil {
				return &NotFoundError{Kind: "fuel entry", ID: cmd.ID}
			}
			removeFuel(st, cmd.ID)
		}

		// Captured at write time; later production edits do not rewrite it.
		prodWeight := 0.0
		for _, l := range st.ProductionLogs {
			if l.Date == cmd.Date {
				prodWeight = quantity.AddKg(prodWeight, l.TotalProdWeight)
			}
		}

		entry := models.FuelEntry{
			ID:                    id,
			Date:                  cmd.Date,
			Shift:                 cmd.Shift,
			Opening:               cmd.Opening,
			Purchased:             cmd.Purchased,
			Closing:               cmd.Closing,
			Used:                  used,
			TotalProdWeightOnDate: prodWeight,
		}
		st.FuelLogs = append([]models.FuelEntry{entry}, st.FuelLogs...)
		appendAudit(st, "Fuel Consumption", submitAction(cmd.ID), "",
			fmt.Sprintf("Entry: %gL used on %s", used, cmd.Date), cmd.Actor)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) DeleteFuel(id, actor string) error {
	return e.mutate(func(st *models.FactoryState) error {
		if findFuel(st, id) == nil {
			return &NotFoundError{Kind: "fuel entry", ID: id}
		}
		removeFuel(st, id)
		appendAudit(st, "Fuel Consumption", models.AuditActionDelete, id, "Deleted record.", actor)
		return nil
	})
}

func findFuel(st *models.FactoryState, id string) *models.FuelEntry {
	for i := range st.FuelLogs {
		if st.FuelLogs[i].ID == id {
			return &st.FuelLogs[i]
		}
	}
	return nil
}

func removeFuel(st *models.FactoryState, id string) {
	out := st.FuelLogs[:0]
	for _, l := range st.FuelLogs {
		if l.ID != id {
			out = append(out, l)
		}
	}
	st.FuelLogs = out
}
