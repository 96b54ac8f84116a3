package cmd

import (
	"log/slog"
	"os"

	"github.com/rybkr/mosaic/internal/logging"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Reassemble images from scrambled square tiles",
	Long: `mosaic matches the borders of unordered, arbitrarily rotated and flipped
square tiles, reassembles them into one image and searches that image for
a motif under every rotation and reflection.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
