// Package tile holds the puzzle's tile set and everything derived from tile
// borders alone: border signatures, the adjacency index, per-tile neighbor
// records and the corner/edge/interior classification.
package tile

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rybkr/mosaic/internal/board"
)

var (
	ErrEmptySet     = errors.New("tile set is empty")
	ErrNotSquare    = errors.New("tile is not square")
	ErrSideMismatch = errors.New("tiles differ in side length")
)

// ID identifies a tile. Any integer is a valid identifier.
type ID int

// Set maps each tile identifier to its pixel grid.
type Set map[ID]*board.Grid

// IDs returns the tile identifiers in ascending order.
func (s Set) IDs() []ID {
	return sortedKeys(s)
}

// Clone creates an independent copy of the set and its grids.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for id, g := range s {
		clone[id] = g.Clone()
	}
	return clone
}

// Side returns the common side length of every tile.
// Returns an error if the set is empty, a tile is not square, or the tiles
// differ in size.
func (s Set) Side() (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptySet
	}
	side := 0
	for _, id := range s.IDs() {
		g := s[id]
		if !g.IsSquare() {
			return 0, fmt.Errorf("%w: tile %d is %dx%d", ErrNotSquare, id, g.Rows(), g.Cols())
		}
		if side == 0 {
			side = g.Rows()
		} else if g.Rows() != side {
			return 0, fmt.Errorf("%w: tile %d has side %d, expected %d", ErrSideMismatch, id, g.Rows(), side)
		}
	}
	return side, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
