package solver

import (
	"errors"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/logging"
	"github.com/rybkr/mosaic/internal/motif"
)

// Answer holds the two derived scores of a solved puzzle.
type Answer struct {
	// CornerProduct is the product of the four corner tile IDs.
	CornerProduct int64
	// Matches is the motif count in the first orientation containing it.
	Matches int
	// Orientation is the image transform in which the matches were found.
	Orientation board.Orientation
	// Roughness counts on pixels not covered by a motif match.
	Roughness int
}

// Score derives the answer for a solved puzzle. A motif that cannot be
// found in any orientation is not fatal: the answer is still returned,
// with zero matches, alongside motif.ErrNotFound.
func Score(result *Result, m *motif.Motif) (*Answer, error) {
	found, err := motif.Find(result.Image, m)
	if err != nil && !errors.Is(err, motif.ErrNotFound) {
		return nil, err
	}

	answer := &Answer{
		CornerProduct: result.Classes.CornerProduct(),
		Matches:       found.Count,
		Orientation:   found.Orientation,
		Roughness:     result.Image.Count() - found.Count*m.Len(),
	}
	if err != nil {
		logging.Logger().Warn("motif not found in any orientation", "pixels", m.Len())
	}
	return answer, err
}
