package tile

import "testing"

func TestNeighbor(t *testing.T) {
	if !None.IsNone() {
		t.Error("None.IsNone() = false")
	}
	if _, ok := None.ID(); ok {
		t.Error("None.ID() reported a tile")
	}
	n := Some(0)
	if n.IsNone() {
		t.Error("Some(0) must be distinguishable from None")
	}
	if id, ok := n.ID(); !ok || id != 0 {
		t.Errorf("Some(0).ID() = %d, %v", id, ok)
	}
	if Some(-1) == None {
		t.Error("Some(-1) == None")
	}
	if got := Some(42).String(); got != "42" {
		t.Errorf("String() = %q, want 42", got)
	}
	if got := None.String(); got != "none" {
		t.Errorf("String() = %q, want none", got)
	}
}

func TestRecordRotate(t *testing.T) {
	rec := Record{Some(1), Some(2), Some(3), None}
	rec.Rotate()
	want := Record{None, Some(1), Some(2), Some(3)}
	if rec != want {
		t.Errorf("Rotate() = %v, want %v", rec, want)
	}

	for _i := 0; _i < 3; _i++ {
		rec.Rotate()
	}
	if rec != (Record{Some(1), Some(2), Some(3), None}) {
		t.Errorf("four rotations = %v, want the original record", rec)
	}
}

func TestRecordFlip(t *testing.T) {
	rec := Record{Some(1), Some(2), Some(3), Some(4)}
	rec.Flip()
	want := Record{Some(1), Some(4), Some(3), Some(2)}
	if rec != want {
		t.Errorf("Flip() = %v, want %v", rec, want)
	}
}

func TestRecordMissing(t *testing.T) {
	rec := Record{None, Some(2), None, Some(4)}
	if got := rec.Missing(); got != 2 {
		t.Errorf("Missing() = %d, want 2", got)
	}
	if got := rec.Side(Right); got != Some(2) {
		t.Errorf("Side(Right) = %v, want 2", got)
	}
}
