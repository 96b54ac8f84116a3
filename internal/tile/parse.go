package tile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rybkr/mosaic/internal/board"
)

var (
	ErrSyntax      = errors.New("malformed tile input")
	ErrDuplicateID = errors.New("duplicate tile id")
)

// Parse reads tiles in the text format:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//
// Blocks are separated by blank lines. '#' is an on pixel, '.' is off.
func Parse(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)

	var (
		id      ID
		rows    [][]uint8
		inTile  bool
		lineNum int
		start   int
	)

	flush := func() error {
		if !inTile {
			return nil
		}
		inTile = false
		if _, dup := s[id]; dup {
			return fmt.Errorf("%w: %d (line %d)", ErrDuplicateID, id, start)
		}
		g, err := board.NewFromRows(rows)
		if err != nil {
			return fmt.Errorf("%w: tile %d (line %d): %w", ErrSyntax, id, start, err)
		}
		s[id] = g
		return nil
	}

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if !inTile {
			n, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNum, err)
			}
			id, rows, inTile, start = n, nil, true, lineNum
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNum, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(s) == 0 {
		return nil, ErrEmptySet
	}
	return s, nil
}

// parseHeader parses a "Tile <id>:" line.
func parseHeader(line string) (ID, error) {
	rest, ok := strings.CutPrefix(line, "Tile ")
	if !ok {
		return 0, fmt.Errorf("expected tile header, got %q", line)
	}
	rest, ok = strings.CutSuffix(rest, ":")
	if !ok {
		return 0, fmt.Errorf("tile header %q missing ':'", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("invalid tile id: %w", err)
	}
	return ID(n), nil
}

// parseRow converts a line of '#' and '.' into pixels.
func parseRow(line string) ([]uint8, error) {
	row := make([]uint8, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '#':
			row[i] = board.On
		case '.':
			row[i] = board.Off
		default:
			return nil, fmt.Errorf("invalid character '%c' at column %d", line[i], i)
		}
	}
	return row, nil
}

// Write emits s in the text format read by Parse, in ascending ID order.
func Write(w io.Writer, s Set) error {
	bw := bufio.NewWriter(w)
	for i, id := range s.IDs() {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "Tile %d:\n%s\n", id, s[id]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
