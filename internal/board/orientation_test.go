package board

import (
	"math/rand"
	"testing"
)

func TestOrientations(t *testing.T) {
	all := Orientations()
	seen := map[Orientation]bool{}
	for i, o := range all {
		if seen[o] {
			t.Fatalf("orientation %v listed twice", o)
		}
		seen[o] = true
		if o.Rotation != i%4 || o.Flip != (i >= 4) {
			t.Errorf("Orientations()[%d] = %v, want rotation %d flip %v", i, o, i%4, i >= 4)
		}
	}
}

func TestApplyFlipsBeforeRotating(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(3)), 5, 5)
	o := Orientation{Rotation: 1, Flip: true}
	want := g.FlipHorizontal().Rotate90()
	if !o.Apply(g).Equal(want) {
		t.Error("Apply(r1f) != Rotate90(FlipHorizontal(g))")
	}
}

func TestApplyProducesEightDistinctImages(t *testing.T) {
	// An asymmetric grid has 8 distinct orientations.
	g, err := NewFromRows([][]uint8{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	var images []*Grid
	for _, o := range Orientations() {
		img := o.Apply(g)
		for _, prev := range images {
			if prev.Equal(img) {
				t.Fatalf("orientation %v duplicates an earlier image:\n%s", o, img)
			}
		}
		images = append(images, img)
	}
}

func TestApplyIdentityCopies(t *testing.T) {
	g := New(2, 2)
	out := Orientation{}.Apply(g)
	if out == g {
		t.Error("identity Apply returned its input instead of a copy")
	}
	if !out.Equal(g) {
		t.Error("identity Apply changed the pixels")
	}
}

func TestOrientationString(t *testing.T) {
	if got := (Orientation{Rotation: 2}).String(); got != "r2" {
		t.Errorf("String() = %q, want r2", got)
	}
	if got := (Orientation{Rotation: 1, Flip: true}).String(); got != "r1f" {
		t.Errorf("String() = %q, want r1f", got)
	}
}
