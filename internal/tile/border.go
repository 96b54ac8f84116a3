package tile

import "github.com/rybkr/mosaic/internal/board"

// Side names one edge of a tile, in neighbor record order.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < Top || s > Left {
		return "invalid"
	}
	return sideNames[s]
}

// Border is the sequence of pixels along one edge of a tile.
type Border []uint8

// Borders returns the four borders of g in top, right, bottom, left order.
// Rows read left to right, columns read top to bottom.
func Borders(g *board.Grid) [4]Border {
	return [4]Border{
		Top:    g.Row(0),
		Right:  g.Col(g.Cols() - 1),
		Bottom: g.Row(g.Rows() - 1),
		Left:   g.Col(0),
	}
}

// Reverse returns the border read in the opposite direction.
func (b Border) Reverse() Border {
	out := make(Border, len(b))
	for i, px := range b {
		out[len(b)-1-i] = px
	}
	return out
}

// Signature returns a comparable key for the border's exact pixel sequence.
func (b Border) Signature() Signature {
	return Signature(b)
}

// Signature is a border's pixel sequence in a form usable as a map key.
type Signature string
