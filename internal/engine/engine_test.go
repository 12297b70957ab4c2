package engine

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"factorypro-backend/internal/models"
)

const testDate = "2025-12-09"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(nil, nil)
}

type testIDs struct {
	material string
	operator string
	machine  string
}

func seedMasterData(t *testing.T, e *Engine) testIDs {
	t.Helper()
	material, err := e.AddMasterItem(MasterItemCommand{Name: "PS Beads", Category: models.CategoryRawMaterial, Actor: "tester"})
	if err != nil {
		t.Fatalf("add raw material: %v", err)
	}
	operator, err := e.AddMasterItem(MasterItemCommand{Name: "K. Perera", Category: models.CategoryOperator, Actor: "tester"})
	if err != nil {
		t.Fatalf("add operator: %v", err)
	}
	machine, err := e.AddMasterItem(MasterItemCommand{Name: "Shape Mould 1", Category: models.CategoryMachine, Actor: "tester"})
	if err != nil {
		t.Fatalf("add machine: %v", err)
	}
	return testIDs{material: material, operator: operator, machine: machine}
}

func rawMaterialStock(t *testing.T, e *Engine, materialID string) models.RawMaterialStock {
	t.Helper()
	for _, s := range e.Snapshot().RawMaterialStock {
		if s.MaterialID == materialID {
			return s
		}
	}
	t.Fatalf("raw material stock row %s missing", materialID)
	return models.RawMaterialStock{}
}

func siloState(t *testing.T, e *Engine, id int) models.Silo {
	t.Helper()
	for _, s := range e.Snapshot().Silos {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("silo %d missing", id)
	return models.Silo{}
}

func fgStockState(t *testing.T, e *Engine, itemID string) models.FinishedGoodsStock {
	t.Helper()
	for _, s := range e.Snapshot().FGStock {
		if s.ItemID == itemID {
			return s
		}
	}
	t.Fatalf("finished goods stock row %s missing", itemID)
	return models.FinishedGoodsStock{}
}

func fillSilo(t *testing.T, e *Engine, siloID int, kg float64) {
	t.Helper()
	err := e.AdjustSilo(SiloAdjustCommand{Date: testDate, SiloID: siloID, Qty: kg, Reason: "test setup", Actor: "tester"})
	if err != nil {
		t.Fatalf("fill silo %d: %v", siloID, err)
	}
}

func TestReceivingIssuePreExpandingFlow(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	recvID, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 100, Actor: "tester"})
	if err != nil {
		t.Fatalf("receiving: %v", err)
	}
	issueID, err := e.SubmitIssue(IssueCommand{Date: testDate, MaterialID: ids.material, Kg: 40, Actor: "tester"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	preID, err := e.SubmitPreExpanding(PreExpandingCommand{
		Date:         testDate,
		Shift:        models.ShiftDay,
		Machine:      "Pre-expander 1",
		MaterialID:   ids.material,
		OperatorID:   ids.operator,
		QuantityKg:   25,
		OutputSiloID: 3,
		Actor:        "tester",
	})
	if err != nil {
		t.Fatalf("pre-expanding: %v", err)
	}

	rm := rawMaterialStock(t, e, ids.material)
	if rm.Kg != 60 || rm.IssuedKg != 15 {
		t.Fatalf("after chain: Kg=%v IssuedKg=%v, want 60/15", rm.Kg, rm.IssuedKg)
	}
	s3 := siloState(t, e, 3)
	if s3.CurrentStock != 25 {
		t.Fatalf("Silo 3 stock = %v, want 25", s3.CurrentStock)
	}
	if s3.MaterialName != "PS Beads" {
		t.Fatalf("Silo 3 material = %q, want PS Beads", s3.MaterialName)
	}

	// Deleting each record in reverse order restores the pools exactly.
	if err := e.DeletePreExpanding(preID, "tester"); err != nil {
		t.Fatalf("delete pre-expanding: %v", err)
	}
	rm = rawMaterialStock(t, e, ids.material)
	if rm.Kg != 60 || rm.IssuedKg != 40 {
		t.Fatalf("after pre-expanding delete: Kg=%v IssuedKg=%v, want 60/40", rm.Kg, rm.IssuedKg)
	}
	if got := siloState(t, e, 3).CurrentStock; got != 0 {
		t.Fatalf("Silo 3 after delete = %v, want 0", got)
	}

	if err := e.DeleteIssue(issueID, "tester"); err != nil {
		t.Fatalf("delete issue: %v", err)
	}
	rm = rawMaterialStock(t, e, ids.material)
	if rm.Kg != 100 || rm.IssuedKg != 0 {
		t.Fatalf("after issue delete: Kg=%v IssuedKg=%v, want 100/0", rm.Kg, rm.IssuedKg)
	}

	if err := e.DeleteReceiving(recvID, "tester"); err != nil {
		t.Fatalf("delete receiving: %v", err)
	}
	rm = rawMaterialStock(t, e, ids.material)
	if rm.Kg != 0 || rm.IssuedKg != 0 {
		t.Fatalf("after receiving delete: Kg=%v IssuedKg=%v, want 0/0", rm.Kg, rm.IssuedKg)
	}

	st := e.Snapshot()
	if len(st.ReceivingLogs)+len(st.IssueLogs)+len(st.PreExpandingLogs) != 0 {
		t.Fatalf("ledgers not empty after deletes")
	}
}

func TestEditRewritesEntryInPlace(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	recvID, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 100, Actor: "tester"})
	if err != nil {
		t.Fatalf("receiving: %v", err)
	}
	if _, err := e.SubmitReceiving(ReceivingCommand{ID: recvID, Date: testDate, MaterialID: ids.material, Kg: 70, Actor: "tester"}); err != nil {
		t.Fatalf("edit receiving: %v", err)
	}

	if got := rawMaterialStock(t, e, ids.material).Kg; got != 70 {
		t.Fatalf("Kg after edit = %v, want 70", got)
	}
	st := e.Snapshot()
	if len(st.ReceivingLogs) != 1 {
		t.Fatalf("receiving ledger has %d entries after edit, want 1", len(st.ReceivingLogs))
	}
	if st.ReceivingLogs[0].ID != recvID || st.ReceivingLogs[0].Kg != 70 {
		t.Fatalf("edited entry = %+v, want same id with Kg 70", st.ReceivingLogs[0])
	}
}

func TestEditRejectedWhenReversalWouldOverdraw(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	recvID, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 100, Actor: "tester"})
	if err != nil {
		t.Fatalf("receiving: %v", err)
	}
	if _, err := e.SubmitIssue(IssueCommand{Date: testDate, MaterialID: ids.material, Kg: 80, Actor: "tester"}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	before := e.Snapshot()

	// Reversing the 100 kg receipt would drive the unissued pool below zero.
	_, err = e.SubmitReceiving(ReceivingCommand{ID: recvID, Date: testDate, MaterialID: ids.material, Kg: 50, Actor: "tester"})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("edit error = %v, want InsufficientStockError", err)
	}

	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Fatal("rejected edit changed the snapshot")
	}
}

func TestFailedCommandLeavesSnapshotUntouched(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	if _, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 50, Actor: "tester"}); err != nil {
		t.Fatalf("receiving: %v", err)
	}
	before := e.Snapshot()

	_, err := e.SubmitIssue(IssueCommand{Date: testDate, MaterialID: ids.material, Kg: 60, Actor: "tester"})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("overdraw error = %v, want InsufficientStockError", err)
	}
	if insufficient.Available != 50 || insufficient.Requested != 60 {
		t.Fatalf("overdraw reported %v/%v, want available 50 requested 60", insufficient.Available, insufficient.Requested)
	}

	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Fatal("rejected command changed the snapshot")
	}
}

func TestValidationListsEveryBadField(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SubmitReceiving(ReceivingCommand{})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	want := []string{"Date", "Raw Material", "Quantity (kg)"}
	if !reflect.DeepEqual(v.Fields, want) {
		t.Fatalf("fields = %v, want %v", v.Fields, want)
	}
}

func TestUnknownMaterialRejected(t *testing.T) {
	e := newTestEngine(t)
	seedMasterData(t, e)

	_, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: "no-such-id", Kg: 10, Actor: "tester"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestPersistedSnapshotIsNewestAfterStalledWrite(t *testing.T) {
	release := make(chan struct{})
	written := make(chan models.FactoryState, 4)
	stalled := false

	// Persist calls run on one writer goroutine, so the flag needs no lock.
	e := New(nil, func(data []byte) {
		if !stalled {
			stalled = true
			<-release
		}
		var st models.FactoryState
		if err := json.Unmarshal(data, &st); err != nil {
			t.Errorf("decode persisted snapshot: %v", err)
			return
		}
		written <- st
	})

	// Two back-to-back commits while the first write is stalled.
	if err := e.AdjustSilo(SiloAdjustCommand{Date: testDate, SiloID: 2, Qty: 50, Reason: "count correction", Actor: "tester"}); err != nil {
		t.Fatalf("first adjust: %v", err)
	}
	if err := e.AdjustSilo(SiloAdjustCommand{Date: testDate, SiloID: 2, Qty: 20, Reason: "count correction", Actor: "tester"}); err != nil {
		t.Fatalf("second adjust: %v", err)
	}
	close(release)

	var last models.FactoryState
	got := false
drain:
	for {
		select {
		case st := <-written:
			last = st
			got = true
		case <-time.After(500 * time.Millisecond):
			break drain
		}
	}
	if !got {
		t.Fatal("no snapshot was persisted")
	}
	for _, s := range last.Silos {
		if s.ID == 2 && s.CurrentStock != 70 {
			t.Fatalf("final persisted Silo 2 stock = %v, want 70: an older snapshot landed last", s.CurrentStock)
		}
	}
}

func TestAuditTrailIsNewestFirst(t *testing.T) {
	e := newTestEngine(t)
	ids := seedMasterData(t, e)

	if _, err := e.SubmitReceiving(ReceivingCommand{Date: testDate, MaterialID: ids.material, Kg: 10, Actor: "tester"}); err != nil {
		t.Fatalf("receiving: %v", err)
	}
	if _, err := e.SubmitIssue(IssueCommand{Date: testDate, MaterialID: ids.material, Kg: 5, Actor: "tester"}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	logs := e.Snapshot().AuditLogs
	if len(logs) < 2 {
		t.Fatalf("audit trail has %d entries, want at least 2", len(logs))
	}
	if !strings.HasPrefix(logs[0].NewValue, "ISSUE") {
		t.Fatalf("newest audit entry = %q, want the issue entry first", logs[0].NewValue)
	}
	if logs[0].Action != models.AuditActionCreate {
		t.Fatalf("newest audit action = %q, want CREATE", logs[0].Action)
	}
}
