package engine

import (
	"errors"
	"testing"

	"factorypro-backend/internal/models"
)

func TestAddMasterItemCreatesStockRow(t *testing.T) {
	e := newTestEngine(t)

	id, err := e.AddMasterItem(MasterItemCommand{Name: "GPPS Beads", Category: models.CategoryRawMaterial, Actor: "tester"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	rm := rawMaterialStock(t, e, id)
	if rm.MaterialName != "GPPS Beads" || rm.Kg != 0 || rm.IssuedKg != 0 {
		t.Fatalf("stock row = %+v, want named row with zero stock", rm)
	}

	fgID, err := e.AddMasterItem(MasterItemCommand{Name: "Cool box", Category: models.CategoryFinishedGoods, Actor: "tester"})
	if err != nil {
		t.Fatalf("add finished goods: %v", err)
	}
	fg := fgStockState(t, e, fgID)
	if fg.StockPieces != 0 || fg.TotalWeight != 0 {
		t.Fatalf("finished goods row = %+v, want zero stock", fg)
	}
}

func TestAddMasterItemRejectsDuplicateNameInCategory(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.AddMasterItem(MasterItemCommand{Name: "PS Beads", Category: models.CategoryRawMaterial, Actor: "tester"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := e.AddMasterItem(MasterItemCommand{Name: "ps beads", Category: models.CategoryRawMaterial, Actor: "tester"})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("duplicate error = %v, want ValidationError", err)
	}

	// Same name in a different category is fine.
	if _, err := e.AddMasterItem(MasterItemCommand{Name: "PS Beads", Category: models.CategoryOperator, Actor: "tester"}); err != nil {
		t.Fatalf("same name, other category: %v", err)
	}
}

func TestDeleteMasterItemBlockedWhileReferenced(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	recvID, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 10, Actor: "tester"})
	if err != nil {
		t.Fatalf("receiving: %v", err)
	}

	err = e.DeleteMasterItem(ids.material, "tester")
	var inUse *InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("delete error = %v, want InUseError", err)
	}

	if err := e.DeleteReceiving(recvID, "tester"); err != nil {
		t.Fatalf("delete receiving: %v", err)
	}
	if err := e.DeleteMasterItem(ids.material, "tester"); err != nil {
		t.Fatalf("delete after ledger cleared: %v", err)
	}

	st := e.Snapshot()
	for _, s := range st.RawMaterialStock {
		if s.MaterialID == ids.material {
			t.Fatal("stock row survived master item deletion")
		}
	}
}

func TestOperatorReferenceBlocksDeletion(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	if _, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 100, Actor: "tester"}); err != nil {
		t.Fatalf("receiving: %v", err)
	}
	if _, err := e.SubmitIssue(IssueCommand{Date: testDate, MaterialID: ids.material, Kg: 50, Actor: "tester"}); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := e.SubmitPreExpanding(PreExpandingCommand{
		Date: testDate, Shift: models.ShiftDay, MaterialID: ids.material,
		OperatorID: ids.operator, QuantityKg: 20, OutputSiloID: 2, Actor: "tester",
	}); err != nil {
		t.Fatalf("pre-expanding: %v", err)
	}

	err := e.DeleteMasterItem(ids.operator, "tester")
	var inUse *InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("operator delete error = %v, want InUseError", err)
	}
}

func TestDefaultCatalogueSeeded(t *testing.T) {
	e := newTestEngine(t)
	st := e.Snapshot()

	if len(st.Silos) != models.TotalSilos {
		t.Fatalf("silo count = %d, want %d", len(st.Silos), models.TotalSilos)
	}
	fg := fgStockState(t, e, "fish_box")
	if fg.StockPieces != 0 {
		t.Fatalf("default item starts with %d pieces, want 0", fg.StockPieces)
	}

	found := false
	for _, item := range st.MasterItems {
		if item.ID == "fish_box" {
			found = true
			if item.Category != models.CategoryFinishedGoods || item.UOM != "Nos" {
				t.Fatalf("default item = %+v, want Finished Goods in Nos", item)
			}
		}
	}
	if !found {
		t.Fatal("default catalogue is missing fish_box")
	}
}
