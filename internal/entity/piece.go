package entity

// Piece is one grid cell of a sliced image. CorrectX/CorrectY never change after slicing.
type Piece struct {
	ID        int     `json:"id"`
	CorrectX  int     `json:"correct_x"`
	CorrectY  int     `json:"correct_y"`
	CurrentX  float64 `json:"current_x"`
	CurrentY  float64 `json:"current_y"`
	Placed    bool    `json:"placed"`
	ImageData string  `json:"image_data,omitempty"`
}

// IsAt compares in float space; snapped cells far outside the grid never equal a correct cell.
func (that *Piece) IsAt(cellX, cellY float64) bool {
	return float64(that.CorrectX) == cellX && float64(that.CorrectY) == cellY
}
