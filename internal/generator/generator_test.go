package generator

import (
	"errors"
	"testing"

	"github.com/rybkr/mosaic/internal/tile"
)

func TestGenerateDefault(t *testing.T) {
	puzzle, err := GenerateWithSeed(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(puzzle.Tiles) != 9 {
		t.Errorf("generated %d tiles, want 9", len(puzzle.Tiles))
	}
	if side, err := puzzle.Tiles.Side(); err != nil || side != 10 {
		t.Errorf("Side() = %d, %v, want 10", side, err)
	}
	if puzzle.Image.Rows() != 24 || puzzle.Image.Cols() != 24 {
		t.Errorf("image is %dx%d, want 24x24", puzzle.Image.Rows(), puzzle.Image.Cols())
	}

	c, err := tile.Classify(puzzle.Tiles)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(c.Corners) != 4 || len(c.Edges) != 4 || len(c.Interior) != 1 {
		t.Errorf("classes = %d/%d/%d, want 4/4/1", len(c.Corners), len(c.Edges), len(c.Interior))
	}
}

func TestGenerateReproducible(t *testing.T) {
	a, err := GenerateWithSeed(7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateWithSeed(7)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Image.Equal(b.Image) {
		t.Error("same seed produced different images")
	}
	for id, g := range a.Tiles {
		if other, ok := b.Tiles[id]; !ok || !other.Equal(g) {
			t.Errorf("same seed produced a different tile %d", id)
		}
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"single row", func(o *Options) { o.Rows = 1 }},
		{"too many cols", func(o *Options) { o.Cols = MaxTileDim + 1 }},
		{"small side", func(o *Options) { o.Side = MinSide - 1 }},
		{"zero density", func(o *Options) { o.Density = 0 }},
		{"full density", func(o *Options) { o.Density = 1 }},
		{"no attempts", func(o *Options) { o.MaxAttempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = 1
			tt.modify(opts)
			if _, err := New(opts).Generate(); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Generate() error = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestGenerateLarge(t *testing.T) {
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.Seed = 12, 12, 3
	puzzle, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	c, err := tile.Classify(puzzle.Tiles)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(c.Corners) != 4 || len(c.Edges) != 40 || len(c.Interior) != 100 {
		t.Errorf("classes = %d/%d/%d, want 4/40/100", len(c.Corners), len(c.Edges), len(c.Interior))
	}
}
