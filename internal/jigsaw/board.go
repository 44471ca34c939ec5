package jigsaw

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
)

// Board is one play-through of a puzzle. Pieces change only through Place.
type Board struct {
	ID        string         `json:"id"`
	GridSize  int            `json:"grid_size"`
	CellSize  int            `json:"cell_size"`
	Pieces    []entity.Piece `json:"pieces"`
	Completed bool           `json:"completed"`
}

// Placement describes the outcome of a single drop.
type Placement struct {
	PieceID int     `json:"piece_id"`
	CellX   float64 `json:"cell_x"`
	CellY   float64 `json:"cell_y"`
	Placed  bool    `json:"placed"`
	// JustPlaced is set only when the drop moved the piece from unplaced to placed.
	JustPlaced bool `json:"just_placed"`
}

func NewBoard(id string, gridSize, cellSize int, pieces []entity.Piece) *Board {
	return &Board{
		ID:       id,
		GridSize: gridSize,
		CellSize: cellSize,
		Pieces:   pieces,
	}
}

// Snap maps a raw pixel coordinate onto the origin of its cell, flooring toward negative infinity.
// The result stays a float so that drops far outside the grid never wrap onto a real cell.
func Snap(drop float64, cellSize int) float64 {
	return math.Floor(drop/float64(cellSize)) * float64(cellSize)
}

// Place drops a piece at a canvas coordinate. Out-of-grid drops are accepted and never place.
func (that *Board) Place(pieceID int, dropX, dropY float64) (Placement, error) {
	piece := that.piece(pieceID)
	if piece == nil {
		return Placement{}, fmt.Errorf("%w: id %d", apperror.ErrPieceNotFound, pieceID)
	}

	if !isFinite(dropX) || !isFinite(dropY) {
		return Placement{}, fmt.Errorf("%w: (%v, %v)", apperror.ErrInvalidDrop, dropX, dropY)
	}

	cellX := Snap(dropX, that.CellSize)
	cellY := Snap(dropY, that.CellSize)
	placed := piece.IsAt(cellX, cellY)
	wasPlaced := piece.Placed

	piece.CurrentX = cellX
	piece.CurrentY = cellY
	piece.Placed = placed

	return Placement{
		PieceID:    pieceID,
		CellX:      cellX,
		CellY:      cellY,
		Placed:     placed,
		JustPlaced: placed && !wasPlaced,
	}, nil
}

func (that *Board) PlacedCount() int {
	count := 0
	for i := range that.Pieces {
		if that.Pieces[i].Placed {
			count++
		}
	}

	return count
}

// Progress returns the completion percentage.
func (that *Board) Progress() float64 {
	if len(that.Pieces) == 0 {
		return 0
	}

	return float64(that.PlacedCount()) / float64(len(that.Pieces)) * 100
}

// MarkCompleteIfDone reports true once per board, the first time every piece is placed.
func (that *Board) MarkCompleteIfDone() bool {
	if that.Completed || len(that.Pieces) == 0 {
		return false
	}

	if that.PlacedCount() != len(that.Pieces) {
		return false
	}

	that.Completed = true

	return true
}

func (that *Board) Unplaced() []entity.Piece {
	pieces := make([]entity.Piece, 0, len(that.Pieces))
	for _, piece := range that.Pieces {
		if !piece.Placed {
			pieces = append(pieces, piece)
		}
	}

	return pieces
}

func (that *Board) Clone() *Board {
	if that == nil {
		return nil
	}

	clone := *that
	clone.Pieces = make([]entity.Piece, len(that.Pieces))
	copy(clone.Pieces, that.Pieces)

	return &clone
}

// WithoutImages returns a clone whose pieces carry no image data.
func (that *Board) WithoutImages() *Board {
	clone := that.Clone()
	if clone == nil {
		return nil
	}

	for i := range clone.Pieces {
		clone.Pieces[i].ImageData = ""
	}

	return clone
}

func (that *Board) piece(id int) *entity.Piece {
	for i := range that.Pieces {
		if that.Pieces[i].ID == id {
			return &that.Pieces[i]
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
