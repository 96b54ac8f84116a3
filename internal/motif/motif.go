// Package motif searches an assembled image for a fixed pixel pattern
// under all eight rotations and reflections.
package motif

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/rybkr/mosaic/internal/board"
)

var (
	ErrEmptyMotif = errors.New("motif has no pixels")
	ErrNotFound   = errors.New("motif not found in any orientation")
)

// Point is a pixel offset, X to the right and Y down.
type Point struct {
	X, Y int
}

// Motif is a set of pixel offsets relative to its top-left bounding corner.
type Motif struct {
	points        []Point
	width, height int
}

// New creates a Motif from offsets, translating them so the smallest X
// and Y are 0. Duplicate points are dropped.
func New(points []Point) (*Motif, error) {
	if len(points) == 0 {
		return nil, ErrEmptyMotif
	}

	minX, minY := points[0].X, points[0].Y
	for _, p := range points {
		minX, minY = min(minX, p.X), min(minY, p.Y)
	}

	m := &Motif{points: make([]Point, 0, len(points))}
	for _, p := range points {
		q := Point{X: p.X - minX, Y: p.Y - minY}
		m.width, m.height = max(m.width, q.X+1), max(m.height, q.Y+1)
		m.points = append(m.points, q)
	}
	slices.SortFunc(m.points, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	m.points = slices.Compact(m.points)
	return m, nil
}

// Parse reads a pattern where '#' marks a motif pixel. Any other
// character, including spaces, is background.
func Parse(r io.Reader) (*Motif, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		for x, ch := range []byte(sc.Text()) {
			if ch == '#' {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading motif: %w", err)
	}
	return New(points)
}

// Points returns a copy of the motif's offsets, sorted by row then column.
func (m *Motif) Points() []Point {
	return slices.Clone(m.points)
}

// Len returns the number of pixels in the motif.
func (m *Motif) Len() int {
	return len(m.points)
}

// Width returns the motif's bounding width.
func (m *Motif) Width() int {
	return m.width
}

// Height returns the motif's bounding height.
func (m *Motif) Height() int {
	return m.height
}

// MatchesAt reports whether every motif pixel is on when the motif's
// top-left corner is placed at column x, row y. Positions where the motif
// would extend past the grid never match.
func (m *Motif) MatchesAt(g *board.Grid, x, y int) bool {
	if x < 0 || y < 0 || x+m.width > g.Cols() || y+m.height > g.Rows() {
		return false
	}
	for _, p := range m.points {
		if g.Get(y+p.Y, x+p.X) != board.On {
			return false
		}
	}
	return true
}

// Count returns the number of anchors in g, in its current orientation,
// where the motif matches.
func (m *Motif) Count(g *board.Grid) int {
	n := 0
	for y := 0; y+m.height <= g.Rows(); y++ {
		for x := 0; x+m.width <= g.Cols(); x++ {
			if m.MatchesAt(g, x, y) {
				n++
			}
		}
	}
	return n
}

// String renders the motif with '#' for its pixels and ' ' elsewhere.
func (m *Motif) String() string {
	rows := make([][]byte, m.height)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{' '}, m.width)
	}
	for _, p := range m.points {
		rows[p.Y][p.X] = '#'
	}
	return string(bytes.Join(rows, []byte{'\n'}))
}
