package solver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/tile"
)

// Placement is a tile positioned in the assembled grid together with the
// transform applied to its raw pixels.
type Placement struct {
	ID          tile.ID
	Orientation board.Orientation
}

// Layout is the assembled tile grid in row-major order.
// Every row holds the same number of placements once validated.
type Layout struct {
	rows [][]Placement
}

// NewLayout builds a Layout from placement rows and validates it.
func NewLayout(rows [][]Placement) (*Layout, error) {
	l := &Layout{rows: rows}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Rows returns the number of tile rows.
func (l *Layout) Rows() int {
	return len(l.rows)
}

// Cols returns the number of tiles per row.
func (l *Layout) Cols() int {
	if len(l.rows) == 0 {
		return 0
	}
	return len(l.rows[0])
}

// At returns the placement at the given tile row and column.
func (l *Layout) At(row, col int) Placement {
	return l.rows[row][col]
}

// Placements returns every placement in row-major order.
func (l *Layout) Placements() []Placement {
	out := make([]Placement, 0, l.Rows()*l.Cols())
	for _, row := range l.rows {
		out = append(out, row...)
	}
	return out
}

// IDs returns the tile identifiers as a row-major table.
func (l *Layout) IDs() [][]tile.ID {
	out := make([][]tile.ID, len(l.rows))
	for r, row := range l.rows {
		out[r] = make([]tile.ID, len(row))
		for c, p := range row {
			out[r][c] = p.ID
		}
	}
	return out
}

// Validate checks that the layout is non-empty and rectangular.
// Row 0's length sets the expected length of every row.
func (l *Layout) Validate() error {
	if len(l.rows) == 0 || len(l.rows[0]) == 0 {
		return fmt.Errorf("%w: layout is empty", ErrRowLengthMismatch)
	}
	for r, row := range l.rows {
		if len(row) != len(l.rows[0]) {
			return fmt.Errorf("%w: row %d has %d tiles, row 0 has %d", ErrRowLengthMismatch, r, len(row), len(l.rows[0]))
		}
	}
	return nil
}

// Format returns the tile IDs as an aligned table, one row per line.
func (l *Layout) Format() string {
	width := 0
	for _, p := range l.Placements() {
		width = max(width, len(strconv.Itoa(int(p.ID))))
	}

	var sb strings.Builder
	for _, row := range l.rows {
		for c, p := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, p.ID)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
