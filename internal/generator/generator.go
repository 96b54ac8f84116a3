package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rybkr/mosaic/internal/board"
	"github.com/rybkr/mosaic/internal/jigsaw"
	"github.com/rybkr/mosaic/internal/logging"
	"github.com/rybkr/mosaic/internal/tile"
)

const (
	MinSide    = 6
	MaxSide    = 64
	MaxTileDim = 32
)

var (
	ErrGenerationFailed = errors.New("failed to generate an unambiguous puzzle")
	ErrInvalidOptions   = errors.New("invalid generator options")
)

// Puzzle is a generated tile set together with its known solution.
type Puzzle struct {
	Tiles tile.Set
	// Image is the picture a correct assembly reconstructs, in the
	// canvas orientation.
	Image  *board.Grid
	Pieces []jigsaw.Piece
	Rows   int
	Cols   int
}

// Generator creates tile puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a puzzle whose borders identify every neighbor pair
// unambiguously. Candidates whose resolved neighbors disagree with the
// canvas are discarded.
func (g *Generator) Generate() (*Puzzle, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	o := g.options
	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		canvas, ok := jigsaw.RandomCanvas(g.rng, o.Rows, o.Cols, o.Side, o.Density)
		if !ok {
			continue
		}
		puzzle, err := g.build(canvas)
		if err != nil {
			return nil, err
		}
		if g.isUnambiguous(puzzle) {
			logging.Logger().Debug("generated puzzle", "attempt", attempt+1, "tiles", len(puzzle.Tiles))
			return puzzle, nil
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrGenerationFailed, o.MaxAttempts)
}

// validate checks the options before any work is done.
func (g *Generator) validate() error {
	o := g.options
	// A single row or column leaves end tiles with three open sides.
	if o.Rows < 2 || o.Cols < 2 || o.Rows > MaxTileDim || o.Cols > MaxTileDim {
		return fmt.Errorf("%w: tile grid %dx%d must be within 2-%d per side", ErrInvalidOptions, o.Rows, o.Cols, MaxTileDim)
	}
	if o.Side < MinSide || o.Side > MaxSide {
		return fmt.Errorf("%w: side %d must be within %d-%d", ErrInvalidOptions, o.Side, MinSide, MaxSide)
	}
	if o.Density <= 0 || o.Density >= 1 {
		return fmt.Errorf("%w: density %v must be strictly between 0 and 1", ErrInvalidOptions, o.Density)
	}
	if o.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidOptions)
	}
	return nil
}

// build cuts and scrambles one candidate canvas.
func (g *Generator) build(canvas *board.Grid) (*Puzzle, error) {
	o := g.options
	cut, err := jigsaw.Cut(canvas, o.Rows, o.Cols, o.Side)
	if err != nil {
		return nil, err
	}
	pieces, err := jigsaw.Scramble(g.rng, cut)
	if err != nil {
		return nil, err
	}

	tiles := make(tile.Set, len(pieces))
	for _, p := range pieces {
		tiles[tile.ID(p.ID)] = p.Grid
	}
	return &Puzzle{
		Tiles:  tiles,
		Image:  jigsaw.Image(canvas, o.Rows, o.Cols, o.Side),
		Pieces: pieces,
		Rows:   o.Rows,
		Cols:   o.Cols,
	}, nil
}

// isUnambiguous reports whether the resolved neighbor records name
// exactly the pieces that were adjacent on the canvas.
func (g *Generator) isUnambiguous(p *Puzzle) bool {
	records, err := tile.Resolve(p.Tiles, tile.NewIndex(p.Tiles))
	if err != nil {
		return false
	}

	for id, want := range jigsaw.Adjacent(p.Pieces) {
		var got []int
		for _, nb := range records[tile.ID(id)] {
			if n, ok := nb.ID(); ok {
				got = append(got, int(n))
			}
		}
		slices.Sort(got)
		want = slices.Clone(want)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			return false
		}
	}
	return true
}

// GenerateWithSeed is a convenience function for a reproducible puzzle
// with default dimensions.
func GenerateWithSeed(seed int64) (*Puzzle, error) {
	opts := DefaultOptions()
	opts.Seed = seed
	return New(opts).Generate()
}
