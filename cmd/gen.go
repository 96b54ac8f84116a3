package cmd

import (
	"fmt"
	"os"

	"github.com/rybkr/mosaic/internal/generator"
	"github.com/rybkr/mosaic/internal/tile"
	"github.com/spf13/cobra"
)

var (
	genRows    int
	genCols    int
	genSide    int
	genDensity float64
	genSeed    int64
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random tile puzzle",
		Long: `Generate a random image, cut it into square tiles and scramble them
with random IDs, rotations and flips. The puzzle is written in the same
text format that solve reads.

Examples:
  mosaic gen
  mosaic gen --rows 12 --cols 12 --side 10 -o tiles.txt
  mosaic gen --seed 42 --density 0.3`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}

	defaults := generator.DefaultOptions()
	genCmd.Flags().IntVar(&genRows, "rows", defaults.Rows, "Tile rows")
	genCmd.Flags().IntVar(&genCols, "cols", defaults.Cols, "Tile columns")
	genCmd.Flags().IntVar(&genSide, "side", defaults.Side, "Tile side length in pixels")
	genCmd.Flags().Float64Var(&genDensity, "density", defaults.Density, "Probability that a pixel is on")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	opts := generator.DefaultOptions()
	opts.Rows, opts.Cols, opts.Side = genRows, genCols, genSide
	opts.Density, opts.Seed = genDensity, genSeed

	puzzle, err := generator.New(opts).Generate()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if outputFile == "" {
		return tile.Write(cmd.OutOrStdout(), puzzle.Tiles)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create puzzle file: %w", err)
	}
	defer file.Close()

	if err := tile.Write(file, puzzle.Tiles); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Generated %dx%d puzzle (%d tiles) in %s\n", opts.Rows, opts.Cols, len(puzzle.Tiles), outputFile)
	return file.Close()
}
