package tile

import "strconv"

// Neighbor is an optional tile reference: either a tile ID or none,
// meaning the side lies on the outer edge of the image.
type Neighbor struct {
	id    ID
	valid bool
}

// None is the absent neighbor.
var None = Neighbor{}

// Some returns a neighbor referring to id.
func Some(id ID) Neighbor {
	return Neighbor{id: id, valid: true}
}

// ID returns the referenced tile and whether there is one.
func (n Neighbor) ID() (ID, bool) {
	return n.id, n.valid
}

// IsNone reports whether there is no neighbor.
func (n Neighbor) IsNone() bool {
	return !n.valid
}

func (n Neighbor) String() string {
	if !n.valid {
		return "none"
	}
	return strconv.Itoa(int(n.id))
}

// Record holds a tile's neighbors in top, right, bottom, left order.
type Record [4]Neighbor

// Rotate turns the record one quarter clockwise in place: the left
// neighbor moves to the top and every other slot shifts one side on.
func (r *Record) Rotate() {
	r[Top], r[Right], r[Bottom], r[Left] = r[Left], r[Top], r[Right], r[Bottom]
}

// Flip mirrors the record left to right in place.
func (r *Record) Flip() {
	r[Right], r[Left] = r[Left], r[Right]
}

// Side returns the neighbor facing s.
func (r Record) Side(s Side) Neighbor {
	return r[s]
}

// Missing returns how many sides have no neighbor.
func (r Record) Missing() int {
	n := 0
	for _, nb := range r {
		if nb.IsNone() {
			n++
		}
	}
	return n
}
