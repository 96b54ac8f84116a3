package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("pixel must be 0 or 1")
	ErrEmptyGrid       = errors.New("grid has no pixels")
	ErrRaggedRows      = errors.New("grid rows differ in length")
)

// isValidPosition reports whether a given row and column are in bounds.
func (g *Grid) isValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// validatePosition checks if a position is within grid bounds.
func (g *Grid) validatePosition(row, col int) error {
	if !g.isValidPosition(row, col) {
		return fmt.Errorf("%w: (%d, %d) must be within %dx%d", ErrInvalidPosition, row, col, g.rows, g.cols)
	}
	return nil
}

// validateValue checks if a value is a binary pixel.
func validateValue(val uint8) error {
	if val != Off && val != On {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
