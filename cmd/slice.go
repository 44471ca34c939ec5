package cmd

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/assets"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
)

var (
	sliceGrid      int
	slicePieceSize int
	sliceBorder    int
	sliceOutputDir string
)

func init() {
	sliceCmd := &cobra.Command{
		Use:   "slice <image>",
		Short: "Slice an image into puzzle piece PNGs",
		Long: `Slice an image into a grid of bordered puzzle pieces, one PNG per piece.

Examples:
  ecopuzzle slice assets/forest-puzzle.jpg
  ecopuzzle slice photo.png --grid 3 --piece-size 160 -o pieces`,
		Args: cobra.ExactArgs(1),
		RunE: runSlice,
	}

	sliceCmd.Flags().IntVarP(&sliceGrid, "grid", "g", 4, "Pieces per row and column")
	sliceCmd.Flags().IntVar(&slicePieceSize, "piece-size", 120, "Edge length of a piece in pixels")
	sliceCmd.Flags().IntVar(&sliceBorder, "border", jigsaw.DefaultBorderWidth, "Border width in pixels")
	sliceCmd.Flags().StringVarP(&sliceOutputDir, "output", "o", "pieces", "Output directory")

	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	source := args[0]

	slicer, err := jigsaw.NewSlicer(sliceGrid, slicePieceSize, jigsaw.WithBorder(sliceBorder, jigsaw.BorderColor))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	loader := assets.NewLoader(logger, os.DirFS(filepath.Dir(source)))

	img, err := loader.Load(context.Background(), filepath.Base(source))
	if err != nil {
		return err
	}

	tiles, err := slicer.Cut(img)
	if err != nil {
		return fmt.Errorf("failed to slice %s: %w", source, err)
	}

	if err = os.MkdirAll(sliceOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, tile := range tiles {
		name := filepath.Join(sliceOutputDir, fmt.Sprintf("piece_%02d_r%d_c%d.png", tile.ID, tile.Row, tile.Col))
		if err = writePNG(name, tile); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pieces to %s\n", len(tiles), sliceOutputDir)

	return nil
}

func writePNG(name string, tile jigsaw.Tile) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer file.Close()

	if err = png.Encode(file, tile.Image); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	return nil
}
