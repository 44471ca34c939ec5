package game

import (
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
)

type Screen string

const (
	ScreenMenu      Screen = "menu"
	ScreenSelection Screen = "selection"
	ScreenPlaying   Screen = "playing"
)

// State is everything a player sees. Board is nil until the category image has been sliced.
type State struct {
	Screen    Screen          `json:"screen"`
	Category  entity.Category `json:"category,omitempty"`
	Board     *jigsaw.Board   `json:"board,omitempty"`
	Loading   bool            `json:"loading"`
	LoadError string          `json:"load_error,omitempty"`
	Session   entity.Session  `json:"session"`
}

func NewState() State {
	return State{
		Screen:  ScreenMenu,
		Session: entity.NewSession(),
	}
}

func (that State) IsPlaying() bool {
	return that.Screen == ScreenPlaying
}

// IsReady reports whether drops can be applied.
func (that State) IsReady() bool {
	return that.IsPlaying() && !that.Loading && that.Board != nil
}

func (that State) Progress() float64 {
	if that.Board == nil {
		return 0
	}

	return that.Board.Progress()
}

// WithoutImages drops the piece images, which clients only need once per board.
func (that State) WithoutImages() State {
	that.Board = that.Board.WithoutImages()

	return that
}
