package generator

// Options configures puzzle generation behavior.
type Options struct {
	Rows, Cols  int     // Tile grid dimensions
	Side        int     // Tile side length in pixels, including the border
	Density     float64 // Probability that a pixel is on
	Seed        int64   // Seed for reproducible puzzles (0 = random)
	MaxAttempts int     // Candidates to try before giving up
}

// DefaultOptions returns standard generator options: a 3x3 puzzle of
// 10-pixel tiles.
func DefaultOptions() *Options {
	return &Options{
		Rows:        3,
		Cols:        3,
		Side:        10,
		Density:     0.5,
		Seed:        0,
		MaxAttempts: 200,
	}
}
