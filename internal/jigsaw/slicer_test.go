package jigsaw

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quadrantColors = [4]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
}

// quadrantImage paints each quarter of a w×h image in its own colour, row-major.
func quadrantImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			q := 0
			if x >= w/2 {
				q++
			}
			if y >= h/2 {
				q += 2
			}
			img.SetRGBA(x, y, quadrantColors[q])
		}
	}

	return img
}

func TestNewSlicer(t *testing.T) {
	t.Run("Rejects non-positive grid", func(t *testing.T) {
		_, err := NewSlicer(0, 120)

		require.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})

	t.Run("Rejects non-positive piece size", func(t *testing.T) {
		_, err := NewSlicer(4, 0)

		require.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})
}

func TestSlicer_Slice(t *testing.T) {
	for _, gridSize := range []int{1, 2, 3, 4, 7} {
		t.Run("Covers the whole grid", func(t *testing.T) {
			// Given: a slicer for the grid size
			slicer, err := NewSlicer(gridSize, 20)
			require.NoError(t, err)

			// When: an image is sliced
			pieces, err := slicer.Slice(quadrantImage(70, 50))
			require.NoError(t, err)

			// Then: there is one piece per cell with unique correct coordinates
			require.Len(t, pieces, gridSize*gridSize)

			seen := make(map[[2]int]bool, len(pieces))
			for _, piece := range pieces {
				key := [2]int{piece.CorrectX, piece.CorrectY}
				assert.False(t, seen[key], "duplicate coordinate %v", key)
				seen[key] = true

				assert.Zero(t, piece.CorrectX%20)
				assert.Zero(t, piece.CorrectY%20)
				assert.Less(t, piece.CorrectX, gridSize*20)
				assert.Less(t, piece.CorrectY, gridSize*20)
				assert.False(t, piece.Placed)
				assert.True(t, strings.HasPrefix(piece.ImageData, dataURLPrefix))
			}
		})
	}

	t.Run("Fails for an image smaller than the grid", func(t *testing.T) {
		// Given: a 4x4 slicer
		slicer, err := NewSlicer(4, 120)
		require.NoError(t, err)

		// When: a 3 pixel wide image is sliced
		pieces, err := slicer.Slice(image.NewRGBA(image.Rect(0, 0, 3, 100)))

		// Then: no pieces are produced
		require.ErrorIs(t, err, apperror.ErrImageTooSmall)
		assert.Nil(t, pieces)
	})

	t.Run("Fails without an image", func(t *testing.T) {
		slicer, err := NewSlicer(4, 120)
		require.NoError(t, err)

		pieces, err := slicer.Slice(nil)

		require.ErrorIs(t, err, apperror.ErrPuzzleNotLoaded)
		assert.Nil(t, pieces)
	})
}

func TestSlicer_Cut(t *testing.T) {
	t.Run("Each tile holds its own sub-rectangle", func(t *testing.T) {
		// Given: a 2x2 slicer with the default border
		slicer, err := NewSlicer(2, 60)
		require.NoError(t, err)

		// When: a four-colour image is cut
		tiles, err := slicer.Cut(quadrantImage(200, 100))
		require.NoError(t, err)

		// Then: the centre of every tile has its quadrant's colour and the edge has the border
		require.Len(t, tiles, 4)
		for i, tile := range tiles {
			assert.Equal(t, i, tile.ID)
			assert.Equal(t, i%2, tile.Col)
			assert.Equal(t, i/2, tile.Row)
			assert.Equal(t, quadrantColors[i], tile.Image.RGBAAt(30, 30))
			assert.Equal(t, BorderColor, tile.Image.RGBAAt(0, 30))
		}
	})

	t.Run("Honours a non-zero image origin", func(t *testing.T) {
		// Given: a sub-image whose bounds do not start at zero
		src := quadrantImage(100, 100).SubImage(image.Rect(50, 50, 100, 100))
		slicer, err := NewSlicer(1, 10, WithBorder(0, nil))
		require.NoError(t, err)

		// When: it is cut into a single tile
		tiles, err := slicer.Cut(src)
		require.NoError(t, err)

		// Then: the tile only contains the bottom-right quadrant
		assert.Equal(t, quadrantColors[3], tiles[0].Image.RGBAAt(0, 0))
		assert.Equal(t, quadrantColors[3], tiles[0].Image.RGBAAt(5, 5))
	})
}

func TestEncodeDataURL(t *testing.T) {
	// Given: a small image
	img := quadrantImage(4, 4)

	// When: it is encoded
	data, err := EncodeDataURL(img)
	require.NoError(t, err)

	// Then: the payload decodes back to a PNG of the same size
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, dataURLPrefix))
	require.NoError(t, err)
	decoded, err := png.Decode(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
