package tile

import (
	"errors"
	"fmt"
)

var ErrMalformedAdjacency = errors.New("border signature does not identify a unique neighbor")

// Resolve builds the neighbor record of every tile in s from idx.
// A border shared by exactly two tiles names the other tile; a border
// found only on the tile itself is an outer edge. Any other count means
// the puzzle has no single consistent solution.
func Resolve(s Set, idx Index) (map[ID]Record, error) {
	records := make(map[ID]Record, len(s))
	for _, id := range s.IDs() {
		var rec Record
		for side, border := range Borders(s[id]) {
			nb, err := resolveBorder(idx.Lookup(border), id)
			if err != nil {
				return nil, fmt.Errorf("tile %d %s border: %w", id, Side(side), err)
			}
			rec[side] = nb
		}
		records[id] = rec
	}
	return records, nil
}

// resolveBorder picks the neighbor of id from the tiles listed under one
// of its border signatures.
func resolveBorder(ids []ID, id ID) (Neighbor, error) {
	switch len(ids) {
	case 1:
		return None, nil
	case 2:
		// A border that reads the same both ways registers its tile twice.
		if ids[0] == id && ids[1] == id {
			return None, nil
		}
		if ids[0] == id {
			return Some(ids[1]), nil
		}
		if ids[1] == id {
			return Some(ids[0]), nil
		}
		return None, fmt.Errorf("%w: tiles %v listed without tile %d", ErrMalformedAdjacency, ids, id)
	default:
		return None, fmt.Errorf("%w: %d matches %v", ErrMalformedAdjacency, len(ids), ids)
	}
}
