package solver

import (
	"errors"
	"testing"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/tile"
)

func TestOrient(t *testing.T) {
	n := tile.Some
	tests := []struct {
		name      string
		rec       tile.Record
		top, left tile.Neighbor
		want      board.Orientation
		wantRec   tile.Record
	}{
		{
			name: "corner already placed",
			rec:  tile.Record{tile.None, n(2), n(3), tile.None},
			top:  tile.None, left: tile.None,
			want:    board.Orientation{},
			wantRec: tile.Record{tile.None, n(2), n(3), tile.None},
		},
		{
			name: "corner needs a quarter turn",
			rec:  tile.Record{n(2), n(3), tile.None, tile.None},
			top:  tile.None, left: tile.None,
			want:    board.Orientation{Rotation: 1},
			wantRec: tile.Record{tile.None, n(2), n(3), tile.None},
		},
		{
			name: "interior needs flip",
			rec:  tile.Record{n(5), n(7), n(9), n(11)},
			top:  n(5), left: n(7),
			want:    board.Orientation{Flip: true},
			wantRec: tile.Record{n(5), n(11), n(9), n(7)},
		},
		{
			name: "flip and half turn",
			rec:  tile.Record{n(5), n(7), n(9), n(11)},
			top:  n(9), left: n(11),
			want:    board.Orientation{Rotation: 2, Flip: true},
			wantRec: tile.Record{n(9), n(7), n(5), n(11)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			got, err := orient(&rec, tt.top, tt.left)
			if err != nil {
				t.Fatalf("orient: %v", err)
			}
			if got != tt.want {
				t.Errorf("orient() = %v, want %v", got, tt.want)
			}
			if rec != tt.wantRec {
				t.Errorf("record after orient = %v, want %v", rec, tt.wantRec)
			}
		})
	}
}

func TestOrientCoversEveryConsistentPlacement(t *testing.T) {
	n := tile.Some
	base := tile.Record{n(1), n(2), n(3), n(4)}
	// Adjacent pairs in the cycle, in either order, are valid (top, left)
	// constraints; each must be reachable.
	for _, pair := range [][2]tile.ID{{1, 4}, {4, 1}, {2, 1}, {1, 2}, {3, 2}, {2, 3}, {4, 3}, {3, 4}} {
		rec := base
		if _, err := orient(&rec, n(pair[0]), n(pair[1])); err != nil {
			t.Errorf("top=%d left=%d: %v", pair[0], pair[1], err)
		}
	}
}

func TestOrientUnsolvable(t *testing.T) {
	rec := tile.Record{tile.Some(1), tile.Some(2), tile.Some(3), tile.Some(4)}
	// Opposite sides can never be top and left at once.
	_, err := orient(&rec, tile.Some(1), tile.Some(3))
	if !errors.Is(err, ErrUnsolvableOrientation) {
		t.Errorf("orient() error = %v, want ErrUnsolvableOrientation", err)
	}
}
