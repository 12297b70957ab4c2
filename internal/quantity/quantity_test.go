package quantity

import "testing"

func TestKgSnapsToGrid(t *testing.T) {
	if got := Kg(0.1 + 0.2); got != 0.3 {
		t.Errorf("Kg(0.1+0.2) = %v, want 0.3", got)
	}
	if got := Kg(12.3456); got != 12.346 {
		t.Errorf("Kg(12.3456) = %v, want 12.346", got)
	}
	if got := Kg(-4.0001); got != -4.0 {
		t.Errorf("Kg(-4.0001) = %v, want -4", got)
	}
}

func TestAddSubStayOnGrid(t *testing.T) {
	if got := AddKg(0.1, 0.2); got != 0.3 {
		t.Errorf("AddKg(0.1, 0.2) = %v, want 0.3", got)
	}
	if got := SubKg(100, 40.555); got != 59.445 {
		t.Errorf("SubKg(100, 40.555) = %v, want 59.445", got)
	}
	// A reversal must land back on the exact starting value.
	if got := AddKg(SubKg(600, 123.456), 123.456); got != 600 {
		t.Errorf("add after sub = %v, want 600", got)
	}
}

func TestMulKgRounds(t *testing.T) {
	if got := MulKg(0.25, 0.94); got != 0.235 {
		t.Errorf("MulKg(0.25, 0.94) = %v, want 0.235", got)
	}
	if got := MulKg(100, 0.235); got != 23.5 {
		t.Errorf("MulKg(100, 0.235) = %v, want 23.5", got)
	}
	if got := MulKg(0.0333, 0.94); got != 0.031 {
		t.Errorf("MulKg(0.0333, 0.94) = %v, want 0.031", got)
	}
}

func TestPiecesFloors(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.9, 0},
		{12, 12},
		{12.9, 12},
	}
	for _, c := range cases {
		if got := Pieces(c.in); got != c.want {
			t.Errorf("Pieces(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
