package models

import "testing"

func TestDefaultStateLayout(t *testing.T) {
	st := DefaultState()

	if len(st.Silos) != TotalSilos {
		t.Fatalf("silo count = %d, want %d", len(st.Silos), TotalSilos)
	}
	for _, s := range st.Silos {
		want := SiloNormal
		switch s.ID {
		case SiloIDProductionReady:
			want = SiloProductionReady
		case SiloIDIntermediate:
			want = SiloIntermediate
		}
		if s.Type != want {
			t.Errorf("Silo %d type = %q, want %q", s.ID, s.Type, want)
		}
		if s.CurrentStock != 0 {
			t.Errorf("Silo %d starts at %v, want 0", s.ID, s.CurrentStock)
		}
	}

	if len(st.MasterItems) != len(defaultFGNames) {
		t.Fatalf("default catalogue has %d items, want %d", len(st.MasterItems), len(defaultFGNames))
	}
	if len(st.FGStock) != len(st.MasterItems) {
		t.Fatalf("stock rows (%d) do not match catalogue (%d)", len(st.FGStock), len(st.MasterItems))
	}
}

func TestDefaultItemIDsAreStable(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Fish box", "fish_box"},
		{"Special size box (10\")", "special_size_box_(10\")"},
		{"7cm diameter ball", "7cm_diameter_ball"},
	}
	for _, c := range cases {
		if got := defaultFGItemID(c.name); got != c.want {
			t.Errorf("defaultFGItemID(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEnsureDefaultsHealsMissingItems(t *testing.T) {
	st := DefaultState()

	// Drop one default item and its stock row, as an older snapshot might.
	st.MasterItems = st.MasterItems[1:]
	st.FGStock = st.FGStock[1:]

	st.EnsureDefaults()

	found := false
	for _, item := range st.MasterItems {
		if item.ID == "fish_box" {
			found = true
		}
	}
	if !found {
		t.Fatal("EnsureDefaults did not restore fish_box")
	}
	if len(st.FGStock) != len(defaultFGNames) {
		t.Fatalf("stock rows = %d, want %d", len(st.FGStock), len(defaultFGNames))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := DefaultState()
	st.Silos[0].CurrentStock = 100

	cp := st.Clone()
	cp.Silos[0].CurrentStock = 50
	cp.AuditLogs = append(cp.AuditLogs, AuditLog{ID: "x"})
	cp.SiloOpeningSet = true

	if st.Silos[0].CurrentStock != 100 {
		t.Errorf("clone write leaked into original silo stock: %v", st.Silos[0].CurrentStock)
	}
	if len(st.AuditLogs) != 0 {
		t.Error("clone append leaked into original audit trail")
	}
	if st.SiloOpeningSet {
		t.Error("clone latch write leaked into original")
	}
}
