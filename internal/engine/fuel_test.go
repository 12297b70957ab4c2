package engine

import (
	"errors"
	"testing"

	"factorypro-backend/internal/models"
)

func TestFuelUsedIsDerived(t *testing.T) {
	e := newTestEngine(t)

	id, err := e.SubmitFuel(FuelCommand{
		Date:      testDate,
		Shift:     models.ShiftDay,
		Opening:   120,
		Purchased: 40,
		Closing:   95.5,
		Actor:     "tester",
	})
	if err != nil {
		t.Fatalf("fuel: %v", err)
	}

	entry := e.Snapshot().FuelLogs[0]
	if entry.ID != id || entry.Used != 64.5 {
		t.Fatalf("fuel entry = %+v, want used 64.5", entry)
	}

	if err := e.DeleteFuel(id, "tester"); err != nil {
		t.Fatalf("delete fuel: %v", err)
	}
	if got := len(e.Snapshot().FuelLogs); got != 0 {
		t.Fatalf("fuel ledger has %d entries after delete, want 0", got)
	}
}

func TestFuelRejectsNegativeUsage(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SubmitFuel(FuelCommand{
		Date:      testDate,
		Shift:     models.ShiftDay,
		Opening:   50,
		Purchased: 0,
		Closing:   60,
		Actor:     "tester",
	})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("negative usage error = %v, want ValidationError", err)
	}
}

func TestFuelCapturesProductionWeightOnDate(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)
	fillSilo(t, e, 3, 200)

	if _, err := e.SubmitProduction(ProductionCommand{
		Date: testDate, Shift: models.ShiftDay, MachineID: ids.machine,
		OperatorID: ids.operator, SiloID: 3, ItemID: "fish_box",
		TotalQty: 100, AvgWetWeight: 0.25, Actor: "tester",
	}); err != nil {
		t.Fatalf("production: %v", err)
	}
	if _, err := e.SubmitProduction(ProductionCommand{
		Date: "2025-12-10", Shift: models.ShiftDay, MachineID: ids.machine,
		OperatorID: ids.operator, SiloID: 3, ItemID: "fish_box",
		TotalQty: 100, AvgWetWeight: 0.25, Actor: "tester",
	}); err != nil {
		t.Fatalf("production on other date: %v", err)
	}

	fuelID, err := e.SubmitFuel(FuelCommand{
		Date: testDate, Shift: models.ShiftDay,
		Opening: 100, Purchased: 0, Closing: 90, Actor: "tester",
	})
	if err != nil {
		t.Fatalf("fuel: %v", err)
	}

	// Only the same-date production weight is captured.
	entry := e.Snapshot().FuelLogs[0]
	if entry.TotalProdWeightOnDate != 23.5 {
		t.Fatalf("captured production weight = %v, want 23.5", entry.TotalProdWeightOnDate)
	}

	// The captured figure is frozen: later edits do not rewrite it.
	prodID := ""
	for _, l := range e.Snapshot().ProductionLogs {
		if l.Date == testDate {
			prodID = l.ID
		}
	}
	if err := e.DeleteProduction(prodID, "tester"); err != nil {
		t.Fatalf("delete production: %v", err)
	}
	for _, l := range e.Snapshot().FuelLogs {
		if l.ID == fuelID && l.TotalProdWeightOnDate != 23.5 {
			t.Fatalf("captured weight changed to %v after production delete", l.TotalProdWeightOnDate)
		}
	}
}
