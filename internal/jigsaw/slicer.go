package jigsaw

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
)

const (
	dataURLPrefix      = "data:image/png;base64,"
	DefaultBorderWidth = 2
)

// BorderColor is the stroke drawn around every piece by default.
var BorderColor = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}

// Tile is a cut piece before it is encoded.
type Tile struct {
	ID    int
	Col   int
	Row   int
	Image *image.RGBA
}

type Slicer struct {
	gridSize    int
	pieceSize   int
	borderWidth int
	borderColor color.Color
	scaler      draw.Scaler
}

type SlicerOption func(*Slicer)

func WithBorder(width int, c color.Color) SlicerOption {
	return func(s *Slicer) {
		s.borderWidth = width
		s.borderColor = c
	}
}

func WithScaler(scaler draw.Scaler) SlicerOption {
	return func(s *Slicer) {
		s.scaler = scaler
	}
}

func NewSlicer(gridSize, pieceSize int, opts ...SlicerOption) (*Slicer, error) {
	if gridSize < 1 || pieceSize < 1 {
		return nil, fmt.Errorf("%w: grid %d, piece size %d", apperror.ErrInvalidGrid, gridSize, pieceSize)
	}

	slicer := &Slicer{
		gridSize:    gridSize,
		pieceSize:   pieceSize,
		borderWidth: DefaultBorderWidth,
		borderColor: BorderColor,
		scaler:      draw.CatmullRom,
	}

	for _, opt := range opts {
		opt(slicer)
	}

	return slicer, nil
}

func (that *Slicer) GridSize() int {
	return that.gridSize
}

func (that *Slicer) PieceSize() int {
	return that.pieceSize
}

// Cut splits img into gridSize² tiles in row-major order. Either every tile is produced or none.
func (that *Slicer) Cut(img image.Image) ([]Tile, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image", apperror.ErrPuzzleNotLoaded)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < that.gridSize || height < that.gridSize {
		return nil, fmt.Errorf("%w: %dx%d for grid %d", apperror.ErrImageTooSmall, width, height, that.gridSize)
	}

	tiles := make([]Tile, 0, that.gridSize*that.gridSize)
	for row := range that.gridSize {
		for col := range that.gridSize {
			src := image.Rect(
				bounds.Min.X+col*width/that.gridSize,
				bounds.Min.Y+row*height/that.gridSize,
				bounds.Min.X+(col+1)*width/that.gridSize,
				bounds.Min.Y+(row+1)*height/that.gridSize,
			)

			dst := image.NewRGBA(image.Rect(0, 0, that.pieceSize, that.pieceSize))
			that.scaler.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
			that.stroke(dst)

			tiles = append(tiles, Tile{
				ID:    row*that.gridSize + col,
				Col:   col,
				Row:   row,
				Image: dst,
			})
		}
	}

	return tiles, nil
}

// Slice cuts img and encodes every tile as a piece resting on its correct cell.
func (that *Slicer) Slice(img image.Image) ([]entity.Piece, error) {
	tiles, err := that.Cut(img)
	if err != nil {
		return nil, err
	}

	pieces := make([]entity.Piece, 0, len(tiles))
	for _, tile := range tiles {
		data, err := EncodeDataURL(tile.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to encode piece %d: %w", tile.ID, err)
		}

		pieces = append(pieces, entity.Piece{
			ID:        tile.ID,
			CorrectX:  tile.Col * that.pieceSize,
			CorrectY:  tile.Row * that.pieceSize,
			CurrentX:  float64(tile.Col * that.pieceSize),
			CurrentY:  float64(tile.Row * that.pieceSize),
			ImageData: data,
		})
	}

	return pieces, nil
}

func (that *Slicer) stroke(dst *image.RGBA) {
	w := min(that.borderWidth, that.pieceSize)
	if w <= 0 {
		return
	}

	border := image.NewUniform(that.borderColor)
	size := that.pieceSize
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, size, w),
		image.Rect(0, size-w, size, size),
		image.Rect(0, 0, w, size),
		image.Rect(size-w, 0, size, size),
	} {
		draw.Draw(dst, r, border, image.Point{}, draw.Src)
	}
}

func EncodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
