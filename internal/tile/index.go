package tile

// Index maps a border signature to every tile exhibiting it, in either
// reading direction. Entries are not deduplicated: a tile whose border
// reads the same both ways appears twice under that key.
type Index map[Signature][]ID

// NewIndex registers every border of every tile, forward and reversed.
// Tiles are visited in ascending ID order so entry order is reproducible.
func NewIndex(s Set) Index {
	idx := make(Index, len(s)*8)
	for _, id := range s.IDs() {
		for _, border := range Borders(s[id]) {
			idx.add(border, id)
			idx.add(border.Reverse(), id)
		}
	}
	return idx
}

func (idx Index) add(b Border, id ID) {
	key := b.Signature()
	idx[key] = append(idx[key], id)
}

// Lookup returns the tiles registered under the border's signature.
func (idx Index) Lookup(b Border) []ID {
	return idx[b.Signature()]
}

// Candidates returns the distinct tiles other than id that share a border
// with it in either direction.
func (idx Index) Candidates(s Set, id ID) []ID {
	var out []ID
	seen := map[ID]bool{id: true}
	for _, border := range Borders(s[id]) {
		for _, other := range idx.Lookup(border) {
			if !seen[other] {
				seen[other] = true
				out = append(out, other)
			}
		}
	}
	return out
}
