package solver

import (
	"errors"
	"fmt"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/logging"
	"github.com/rybkr/mosaic/internal/tile"
)

var (
	ErrUnsolvableOrientation = errors.New("no orientation satisfies placement constraints")
	ErrRowLengthMismatch     = errors.New("assembled rows differ in length")
	ErrNoCorners             = errors.New("puzzle has no corner tiles")
	ErrIncompleteAssembly    = errors.New("assembly does not place every tile exactly once")
)

// Options configures assembly.
type Options struct {
	// StartCorner selects the corner anchoring row 0, as an index into the
	// corners sorted by ascending ID. 0 is the lowest ID.
	StartCorner int
	// EnsureComplete verifies that every tile is placed exactly once.
	EnsureComplete bool
}

// DefaultOptions returns the standard assembly options.
func DefaultOptions() *Options {
	return &Options{
		StartCorner:    0,
		EnsureComplete: true,
	}
}

// Solver assembles one puzzle instance. It owns a private copy of the tile
// set. Tiles starts as the raw grids; Composite replaces each placed tile
// with its oriented grid.
type Solver struct {
	Tiles   tile.Set
	raw     tile.Set
	options *Options

	side      int
	neighbors map[tile.ID]tile.Record
	classes   *tile.Classes
}

// Result is a solved puzzle.
type Result struct {
	Classes *tile.Classes
	Layout  *Layout
	Image   *board.Grid
}

// New creates a solver for the given tiles.
func New(tiles tile.Set, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	raw := tiles.Clone()
	return &Solver{
		Tiles:   raw.Clone(),
		raw:     raw,
		options: options,
	}
}

// Classify resolves every tile's neighbors and buckets the tiles into
// corners, edges and interior tiles. The result is cached.
func (s *Solver) Classify() (*tile.Classes, error) {
	if s.classes != nil {
		return s.classes, nil
	}

	side, err := s.raw.Side()
	if err != nil {
		return nil, err
	}
	neighbors, err := tile.Resolve(s.raw, tile.NewIndex(s.raw))
	if err != nil {
		return nil, err
	}
	classes, err := tile.ClassifyRecords(neighbors)
	if err != nil {
		return nil, err
	}

	s.side, s.neighbors, s.classes = side, neighbors, classes
	logging.Logger().Debug("classified tiles",
		"tiles", len(s.raw),
		"corners", len(classes.Corners),
		"edges", len(classes.Edges),
		"interior", len(classes.Interior))
	return classes, nil
}

// Solve classifies, assembles and composites the puzzle.
func (s *Solver) Solve() (*Result, error) {
	classes, err := s.Classify()
	if err != nil {
		return nil, err
	}
	layout, err := s.Assemble()
	if err != nil {
		return nil, err
	}
	image, err := s.Composite(layout)
	if err != nil {
		return nil, err
	}
	return &Result{Classes: classes, Layout: layout, Image: image}, nil
}

// Assemble walks the neighbor graph row by row from the start corner and
// solves each tile's orientation against the tile above and to its left.
func (s *Solver) Assemble() (*Layout, error) {
	classes, err := s.Classify()
	if err != nil {
		return nil, err
	}
	if len(classes.Corners) == 0 {
		return nil, ErrNoCorners
	}
	if s.options.StartCorner < 0 {
		return nil, fmt.Errorf("start corner %d must not be negative", s.options.StartCorner)
	}
	start := classes.Corners[s.options.StartCorner%len(classes.Corners)]
	if s.options.EnsureComplete {
		if comps := tile.Components(s.neighbors); len(comps) > 1 {
			return nil, fmt.Errorf("%w: tiles form %d disconnected groups", ErrIncompleteAssembly, len(comps))
		}
	}

	// Orientation solving rotates records in place; work on a copy so the
	// resolved adjacency stays intact for later assemblies.
	work := make(map[tile.ID]tile.Record, len(s.neighbors))
	for id, rec := range s.neighbors {
		work[id] = rec
	}

	layout := &Layout{}
	var above []Placement
	next := tile.Some(start)

	for !next.IsNone() {
		if len(layout.rows) >= len(s.raw) {
			return nil, fmt.Errorf("%w: more rows than tiles", ErrIncompleteAssembly)
		}
		row, err := s.assembleRow(work, next, above)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(layout.rows), err)
		}
		layout.rows = append(layout.rows, row)
		above = row

		first := work[row[0].ID]
		next = first.Side(tile.Bottom)
	}

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if s.options.EnsureComplete {
		if err := s.checkComplete(layout); err != nil {
			return nil, err
		}
	}

	logging.Logger().Debug("assembled layout", "rows", layout.Rows(), "cols", layout.Cols())
	return layout, nil
}

// assembleRow places tiles from first rightward until the right neighbor
// is none. above is the previous row, or nil for row 0.
func (s *Solver) assembleRow(work map[tile.ID]tile.Record, first tile.Neighbor, above []Placement) ([]Placement, error) {
	var row []Placement
	left := tile.None
	cur := first

	for !cur.IsNone() {
		id, _ := cur.ID()
		col := len(row)
		if col >= len(s.raw) {
			return nil, fmt.Errorf("%w: row longer than the tile count", ErrIncompleteAssembly)
		}

		top := tile.None
		if above != nil {
			if col >= len(above) {
				return nil, fmt.Errorf("%w: column %d has no tile above", ErrRowLengthMismatch, col)
			}
			top = tile.Some(above[col].ID)
		}

		rec, ok := work[id]
		if !ok {
			return nil, fmt.Errorf("%w: tile %d is not in the set", ErrIncompleteAssembly, id)
		}
		o, err := orient(&rec, top, left)
		if err != nil {
			return nil, fmt.Errorf("tile %d at column %d: %w", id, col, err)
		}
		work[id] = rec

		row = append(row, Placement{ID: id, Orientation: o})
		logging.Logger().Debug("placed tile", "id", int(id), "col", col, "orientation", o.String())

		left = cur
		cur = rec.Side(tile.Right)
	}
	return row, nil
}

// orient rotates rec until its top and left neighbors match the
// constraints, trying the mirrored record if no plain rotation fits.
// On success rec holds the neighbors as they face after placement.
func orient(rec *tile.Record, top, left tile.Neighbor) (board.Orientation, error) {
	for _, flip := range [...]bool{false, true} {
		if flip {
			rec.Flip()
		}
		for rotation := 0; rotation < 4; rotation++ {
			if rec.Side(tile.Top) == top && rec.Side(tile.Left) == left {
				return board.Orientation{Rotation: rotation, Flip: flip}, nil
			}
			rec.Rotate()
		}
	}
	return board.Orientation{}, fmt.Errorf("%w: want top=%s left=%s, neighbors %v", ErrUnsolvableOrientation, top, left, *rec)
}

// checkComplete verifies every tile in the set appears exactly once.
func (s *Solver) checkComplete(layout *Layout) error {
	seen := make(map[tile.ID]bool, len(s.raw))
	for _, p := range layout.Placements() {
		if seen[p.ID] {
			return fmt.Errorf("%w: tile %d placed twice", ErrIncompleteAssembly, p.ID)
		}
		seen[p.ID] = true
	}
	if len(seen) != len(s.raw) {
		return fmt.Errorf("%w: placed %d of %d tiles", ErrIncompleteAssembly, len(seen), len(s.raw))
	}
	return nil
}

// AssembleAndComposite solves tiles with default options and returns the
// assembled image.
func AssembleAndComposite(tiles tile.Set) (*board.Grid, error) {
	result, err := New(tiles, nil).Solve()
	if err != nil {
		return nil, err
	}
	return result.Image, nil
}
