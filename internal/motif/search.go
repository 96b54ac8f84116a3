package motif

import (
	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/logging"
)

// Result is the outcome of searching all orientations of an image.
type Result struct {
	// Count is the number of matches in the first orientation that had any.
	Count int
	// Orientation is the transform of the searched image that produced Count.
	Orientation board.Orientation
	// Image is the searched image in that orientation.
	Image *board.Grid
}

// Find searches g under each of the 8 orientations, in board.Orientations
// order, and returns the first with a nonzero match count. If no
// orientation matches it returns a zero-count result for g as given,
// together with ErrNotFound.
func Find(g *board.Grid, m *Motif) (Result, error) {
	for _, o := range board.Orientations() {
		oriented := o.Apply(g)
		if n := m.Count(oriented); n > 0 {
			logging.Logger().Debug("motif found", "count", n, "orientation", o.String())
			return Result{Count: n, Orientation: o, Image: oriented}, nil
		}
	}
	return Result{Image: g.Clone()}, ErrNotFound
}

// CountMatches returns the motif count in the first orientation of g that
// contains the motif, or 0 if none does.
func CountMatches(g *board.Grid, m *Motif) int {
	r, _ := Find(g, m)
	return r.Count
}

// Mask returns a grid the size of g with every pixel covered by a match
// of m turned on. g is searched only in its current orientation.
func Mask(g *board.Grid, m *Motif) *board.Grid {
	mask := board.New(g.Rows(), g.Cols())
	for y := 0; y+m.height <= g.Rows(); y++ {
		for x := 0; x+m.width <= g.Cols(); x++ {
			if !m.MatchesAt(g, x, y) {
				continue
			}
			for _, p := range m.points {
				_ = mask.Set(y+p.Y, x+p.X, board.On)
			}
		}
	}
	return mask
}

// Roughness returns the number of on pixels in g that are not attributed
// to a motif match: g.Count() minus matches times the motif size.
// Overlapping matches are counted in full. When the motif is not found
// the full pixel count is returned with ErrNotFound.
func Roughness(g *board.Grid, m *Motif) (int, error) {
	r, err := Find(g, m)
	return g.Count() - r.Count*m.Len(), err
}
