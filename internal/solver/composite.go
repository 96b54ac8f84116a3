package solver

import (
	"fmt"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/logging"
)

// Composite orients every placed tile from its raw grid, replacing the
// grid stored in Tiles, then strips each tile's one-pixel border and joins
// the interiors into a single image of Rows*(L-2) by Cols*(L-2) pixels.
func (s *Solver) Composite(layout *Layout) (*board.Grid, error) {
	if _, err := s.Classify(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	inner := s.side - 2
	image := board.New(layout.Rows()*inner, layout.Cols()*inner)

	for r := 0; r < layout.Rows(); r++ {
		for c := 0; c < layout.Cols(); c++ {
			p := layout.At(r, c)
			raw, ok := s.raw[p.ID]
			if !ok {
				return nil, fmt.Errorf("%w: tile %d is not in the set", ErrIncompleteAssembly, p.ID)
			}
			oriented := p.Orientation.Apply(raw)
			s.Tiles[p.ID] = oriented

			if err := image.Paste(oriented.Interior(), r*inner, c*inner); err != nil {
				return nil, fmt.Errorf("tile %d: %w", p.ID, err)
			}
		}
	}

	logging.Logger().Debug("composited image", "rows", image.Rows(), "cols", image.Cols())
	return image, nil
}
