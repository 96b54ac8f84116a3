// Package jigsaw cuts a pixel canvas into overlapping square tiles and
// scrambles them into an unordered, unlabeled puzzle. It knows nothing
// about solving so that the generator and tests can import it freely.
package jigsaw

import (
	"fmt"
	"math/rand"

	"github.com/rybkr/mosaic/internal/board"
)

const (
	minID             = 1000 // smallest scrambled tile ID
	maxID             = 9999 // largest scrambled tile ID
	maxSegmentRetries = 64   // re-rolls per border segment before giving up
)

// CanvasSize returns the pixel side of a canvas holding n tiles of the
// given side along one axis. Neighboring tiles share their touching
// border row or column, so each tile after the first adds side-1 pixels.
func CanvasSize(n, side int) int {
	return n*(side-1) + 1
}

// RandomCanvas returns a canvas for a rows x cols tile puzzle where each
// pixel is on with probability density. Every border segment between grid
// intersections is re-rolled until it reads differently forwards and
// backwards and matches no other segment in either direction, so each
// border identifies its neighbor unambiguously. It reports false if a
// segment could not be made unique.
func RandomCanvas(rng *rand.Rand, rows, cols, side int, density float64) (*board.Grid, bool) {
	canvas := board.New(CanvasSize(rows, side), CanvasSize(cols, side))
	for r := 0; r < canvas.Rows(); r++ {
		for c := 0; c < canvas.Cols(); c++ {
			if rng.Float64() < density {
				_ = canvas.Set(r, c, board.On)
			}
		}
	}

	used := make(map[string]bool)
	step := side - 1
	for line := 0; line < rows+1; line++ {
		for c := 0; c < cols; c++ {
			if !uniqueSegment(rng, canvas, used, line*step, c*step, 0, 1, side, density) {
				return nil, false
			}
		}
	}
	for line := 0; line < cols+1; line++ {
		for r := 0; r < rows; r++ {
			if !uniqueSegment(rng, canvas, used, r*step, line*step, 1, 0, side, density) {
				return nil, false
			}
		}
	}
	return canvas, true
}

// uniqueSegment re-rolls the pixels strictly between the endpoints of the
// segment starting at (row, col) and running side pixels in direction
// (dr, dc) until it is unused and not a palindrome, then records it.
func uniqueSegment(rng *rand.Rand, canvas *board.Grid, used map[string]bool, row, col, dr, dc, side int, density float64) bool {
	seq := make([]byte, side)
	rev := make([]byte, side)
	for _i := 0; _i < maxSegmentRetries; _i++ {
		for i := 0; i < side; i++ {
			seq[i] = byte(canvas.Get(row+i*dr, col+i*dc))
			rev[side-1-i] = seq[i]
		}
		if key, back := string(seq), string(rev); key != back && !used[key] && !used[back] {
			used[key] = true
			return true
		}
		for i := 1; i < side-1; i++ {
			px := uint8(board.Off)
			if rng.Float64() < density {
				px = board.On
			}
			_ = canvas.Set(row+i*dr, col+i*dc, px)
		}
	}
	return false
}

// Cut slices canvas into rows x cols tiles of the given side, returned in
// row-major order. Tile (r, c) covers the canvas pixels starting at
// (r*(side-1), c*(side-1)).
func Cut(canvas *board.Grid, rows, cols, side int) ([][]*board.Grid, error) {
	if side < 3 {
		return nil, fmt.Errorf("tile side %d must be at least 3", side)
	}
	if canvas.Rows() != CanvasSize(rows, side) || canvas.Cols() != CanvasSize(cols, side) {
		return nil, fmt.Errorf("canvas is %dx%d, %dx%d tiles of side %d need %dx%d",
			canvas.Rows(), canvas.Cols(), rows, cols, side, CanvasSize(rows, side), CanvasSize(cols, side))
	}

	tiles := make([][]*board.Grid, rows)
	for r := 0; r < rows; r++ {
		tiles[r] = make([]*board.Grid, cols)
		for c := 0; c < cols; c++ {
			t := board.New(side, side)
			for i := 0; i < side; i++ {
				for j := 0; j < side; j++ {
					px := canvas.Get(r*(side-1)+i, c*(side-1)+j)
					_ = t.Set(i, j, uint8(px))
				}
			}
			tiles[r][c] = t
		}
	}
	return tiles, nil
}

// Image returns the picture a correct assembly of canvas reconstructs:
// the canvas without the grid lines shared between tiles.
func Image(canvas *board.Grid, rows, cols, side int) *board.Grid {
	inner := side - 2
	out := board.New(rows*inner, cols*inner)
	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			src := canvas.Get(r/inner*(side-1)+1+r%inner, c/inner*(side-1)+1+c%inner)
			_ = out.Set(r, c, uint8(src))
		}
	}
	return out
}

// Piece is a scrambled tile together with where it came from.
type Piece struct {
	ID          int
	Row, Col    int
	Orientation board.Orientation
	Grid        *board.Grid
}

// Scramble assigns every tile a distinct random ID and applies a random
// orientation to its pixels. Pieces are returned in row-major order of
// the original positions.
func Scramble(rng *rand.Rand, tiles [][]*board.Grid) ([]Piece, error) {
	total := 0
	for _, row := range tiles {
		total += len(row)
	}
	if total > maxID-minID+1 {
		return nil, fmt.Errorf("cannot label %d tiles with ids %d-%d", total, minID, maxID)
	}

	ids := rng.Perm(maxID - minID + 1)[:total]
	pieces := make([]Piece, 0, total)
	for r, row := range tiles {
		for c, t := range row {
			o := board.Orientation{Rotation: rng.Intn(4), Flip: rng.Intn(2) == 1}
			pieces = append(pieces, Piece{
				ID:          minID + ids[len(pieces)],
				Row:         r,
				Col:         c,
				Orientation: o,
				Grid:        o.Apply(t),
			})
		}
	}
	return pieces, nil
}

// Adjacent returns, for every piece ID, the IDs of the pieces that were
// orthogonally next to it on the canvas.
func Adjacent(pieces []Piece) map[int][]int {
	at := make(map[[2]int]int, len(pieces))
	for _, p := range pieces {
		at[[2]int{p.Row, p.Col}] = p.ID
	}

	adj := make(map[int][]int, len(pieces))
	for _, p := range pieces {
		for _, d := range [...][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			if id, ok := at[[2]int{p.Row + d[0], p.Col + d[1]}]; ok {
				adj[p.ID] = append(adj[p.ID], id)
			}
		}
		if adj[p.ID] == nil {
			adj[p.ID] = []int{}
		}
	}
	return adj
}
