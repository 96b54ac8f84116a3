package board

import (
	"fmt"
	"strings"
)

// Special pixel values
const (
	Off          = 0
	On           = 1
	InvalidPixel = -1
)

// Grid represents a rectangular grid of binary pixels.
type Grid struct {
	rows, cols int

	// cells holds pixels in row-major order.
	cells []uint8
}

// New creates an all-off Grid with the given dimensions.
// Non-positive dimensions produce an empty grid.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}
}

// NewFromRows creates a Grid from a slice of pixel rows.
// Every row must have the same non-zero length and hold only 0 or 1.
func NewFromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := New(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d pixels, expected %d", ErrRaggedRows, r, len(row), g.cols)
		}
		for c, val := range row {
			if err := g.Set(r, c, val); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	clone.cells = append([]uint8(nil), g.cells...)
	return &clone
}

// Rows returns the number of pixel rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of pixel columns.
func (g *Grid) Cols() int {
	return g.cols
}

// IsSquare reports whether the grid is non-empty with equal sides.
func (g *Grid) IsSquare() bool {
	return g.rows > 0 && g.rows == g.cols
}

// Set places a pixel value at the given row and column.
// Returns an error if the position or value is invalid.
func (g *Grid) Set(row, col int, val uint8) error {
	if err := g.validatePosition(row, col); err != nil {
		return err
	}
	if err := validateValue(val); err != nil {
		return err
	}
	g.cells[row*g.cols+col] = val
	return nil
}

// Get returns the pixel at the given row and column.
// Returns InvalidPixel for positions out of bounds.
func (g *Grid) Get(row, col int) int {
	if !g.isValidPosition(row, col) {
		return InvalidPixel
	}
	return int(g.cells[row*g.cols+col])
}

// Row returns a copy of the given pixel row.
func (g *Grid) Row(row int) []uint8 {
	out := make([]uint8, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}

// Col returns a copy of the given pixel column, read top to bottom.
func (g *Grid) Col(col int) []uint8 {
	out := make([]uint8, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = g.cells[r*g.cols+col]
	}
	return out
}

// Count returns the number of pixels that are on.
func (g *Grid) Count() int {
	n := 0
	for _, cell := range g.cells {
		n += int(cell)
	}
	return n
}

// Equal reports whether two grids have the same shape and pixels.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rotate90 returns the grid rotated 90 degrees clockwise.
// The left column becomes the top row.
func (g *Grid) Rotate90() *Grid {
	out := New(g.cols, g.rows)
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			out.cells[i*out.cols+j] = g.cells[(g.rows-1-j)*g.cols+i]
		}
	}
	return out
}

// FlipHorizontal returns the grid mirrored left to right.
func (g *Grid) FlipHorizontal() *Grid {
	out := New(g.rows, g.cols)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			out.cells[i*g.cols+j] = g.cells[i*g.cols+g.cols-1-j]
		}
	}
	return out
}

// Interior returns the grid without its outer one-pixel frame.
// Grids with fewer than three rows or columns have an empty interior.
func (g *Grid) Interior() *Grid {
	out := New(g.rows-2, g.cols-2)
	for i := 0; i < out.rows; i++ {
		copy(out.cells[i*out.cols:(i+1)*out.cols], g.cells[(i+1)*g.cols+1:(i+2)*g.cols-1])
	}
	return out
}

// Paste copies src into g with its top-left pixel at (row, col).
// Returns an error if src does not fit.
func (g *Grid) Paste(src *Grid, row, col int) error {
	if src.rows == 0 {
		return nil
	}
	if err := g.validatePosition(row, col); err != nil {
		return err
	}
	if err := g.validatePosition(row+src.rows-1, col+src.cols-1); err != nil {
		return err
	}
	for i := 0; i < src.rows; i++ {
		dst := g.cells[(row+i)*g.cols+col:]
		copy(dst[:src.cols], src.cells[i*src.cols:(i+1)*src.cols])
	}
	return nil
}

// String returns the grid with one line per row.
// Pixels that are on are '#', pixels that are off are '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))

	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range g.cells[r*g.cols : (r+1)*g.cols] {
			if cell == On {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// Format returns a human-readable representation framed by a border,
// with a column ruler every ten pixels.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+" + strings.Repeat("-", g.cols) + "+\n"

	sb.WriteString(" ")
	for c := 0; c < g.cols; c++ {
		if c%10 == 0 {
			sb.WriteByte('0' + byte(c/10%10))
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("\n")
	sb.WriteString(line)

	for r := 0; r < g.rows; r++ {
		sb.WriteString("|")
		for _, cell := range g.cells[r*g.cols : (r+1)*g.cols] {
			if cell == On {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)

	return sb.String()
}
