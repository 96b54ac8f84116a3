package board

import "fmt"

// Orientation describes the transform taking a grid from its raw form to
// its placed form: an optional horizontal flip followed by Rotation
// clockwise quarter turns.
type Orientation struct {
	Rotation int // 0-3 clockwise quarter turns
	Flip     bool
}

// Apply returns g transformed by o. The flip is applied before rotating.
func (o Orientation) Apply(g *Grid) *Grid {
	out := g
	if o.Flip {
		out = out.FlipHorizontal()
	}
	for _i := 0; _i < o.Rotation%4; _i++ {
		out = out.Rotate90()
	}
	if out == g {
		out = g.Clone()
	}
	return out
}

// String returns a compact form such as "r2" or "r1f".
func (o Orientation) String() string {
	if o.Flip {
		return fmt.Sprintf("r%df", o.Rotation)
	}
	return fmt.Sprintf("r%d", o.Rotation)
}

// Orientations returns the 8 dihedral orientations in search order:
// the four rotations of the original, then the four rotations of its flip.
func Orientations() [8]Orientation {
	var all [8]Orientation
	for i := range all {
		all[i] = Orientation{Rotation: i % 4, Flip: i >= 4}
	}
	return all
}
