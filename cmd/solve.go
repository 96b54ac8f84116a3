package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rybkr/mosaic/internal/logging"
	"github.com/rybkr/mosaic/internal/motif"
	"github.com/rybkr/mosaic/internal/render"
	"github.com/rybkr/mosaic/internal/solver"
	"github.com/rybkr/mosaic/internal/tile"
	"github.com/spf13/cobra"
)

var (
	motifFile   string
	motifPreset string
	startCorner int
	imageFile   string
	imageScale  int
	showLayout  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <tiles-file>",
		Short: "Reassemble a tile puzzle and search it for a motif",
		Long: `Reassemble the tiles in a puzzle file and print the product of the corner
tile IDs and the image roughness (on pixels not covered by the motif).

Examples:
  mosaic solve tiles.txt
  mosaic solve tiles.txt --layout --image out.png --scale 8
  mosaic solve tiles.txt --motif monster.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&motifFile, "motif", "m", "", "Motif pattern file ('#' marks motif pixels)")
	solveCmd.Flags().StringVar(&motifPreset, "preset", "sea_monster", "Built-in motif to use when --motif is not set")
	solveCmd.Flags().IntVar(&startCorner, "corner", 0, "Index of the corner, by ascending ID, that anchors the first row")
	solveCmd.Flags().StringVarP(&imageFile, "image", "o", "", "Write the assembled image (.png, .bmp or .tiff)")
	solveCmd.Flags().IntVar(&imageScale, "scale", 4, "Output pixels per image pixel")
	solveCmd.Flags().BoolVar(&showLayout, "layout", false, "Print the assembled tile ID layout")

	rootCmd.AddCommand(solveCmd)
}

// loadMotif returns the motif from --motif, or the --preset motif.
func loadMotif() (*motif.Motif, error) {
	if motifFile == "" {
		return motif.Preset(motifPreset)
	}
	f, err := os.Open(motifFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return motif.Parse(f)
}

// loadTiles parses the puzzle file at path.
func loadTiles(path string) (tile.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tile.Parse(f)
}

func runSolve(cmd *cobra.Command, args []string) error {
	tiles, err := loadTiles(args[0])
	if err != nil {
		return fmt.Errorf("failed to read tiles: %w", err)
	}
	m, err := loadMotif()
	if err != nil {
		return fmt.Errorf("failed to load motif: %w", err)
	}

	opts := solver.DefaultOptions()
	opts.StartCorner = startCorner
	result, err := solver.New(tiles, opts).Solve()
	if err != nil {
		return fmt.Errorf("failed to solve puzzle: %w", err)
	}
	logging.Logger().Info("solved puzzle",
		"tiles", len(tiles),
		"rows", result.Layout.Rows(),
		"cols", result.Layout.Cols())

	answer, err := solver.Score(result, m)
	if err != nil && !errors.Is(err, motif.ErrNotFound) {
		return err
	}

	out := cmd.OutOrStdout()
	if showLayout {
		fmt.Fprint(out, result.Layout.Format())
		fmt.Fprintln(out)
	}
	printAnswer(out, answer)

	if imageFile != "" {
		found, _ := motif.Find(result.Image, m)
		if err := writeImage(imageFile, found, m); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
		fmt.Fprintf(out, "Image written to %s\n", imageFile)
	}
	return nil
}

func printAnswer(w io.Writer, a *solver.Answer) {
	fmt.Fprintf(w, "Corner product: %d\n", a.CornerProduct)
	if a.Matches > 0 {
		fmt.Fprintf(w, "Motif matches:  %d (orientation %s)\n", a.Matches, a.Orientation)
	} else {
		fmt.Fprintln(w, "Motif matches:  0 (not found in any orientation)")
	}
	fmt.Fprintf(w, "Roughness:      %d\n", a.Roughness)
}

// writeImage saves the searched image with its motif matches highlighted.
func writeImage(path string, found motif.Result, m *motif.Motif) error {
	format, err := render.FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mask := motif.Mask(found.Image, m)
	if err := render.Encode(f, found.Image, mask, &render.Options{Format: format, Scale: imageScale}); err != nil {
		return err
	}
	return f.Close()
}
