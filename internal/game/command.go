package game

import (
	"image"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
)

const (
	ActionStart          = "menu:start"
	ActionChooseCategory = "category:choose"
	ActionBack           = "nav:back"
	ActionChangeImage    = "puzzle:change-image"
	ActionSwitchCategory = "puzzle:switch-category"
	ActionReset          = "puzzle:reset"
	ActionDrop           = "piece:drop"
	ActionImageLoaded    = "image:loaded"
	ActionImageFailed    = "image:failed"
)

// Command is an input to Machine.Apply.
type Command interface {
	Action() string
}

type Start struct{}

type ChooseCategory struct {
	Category entity.Category
}

type Back struct{}

// ChangeImage swaps to a random category other than the current one.
type ChangeImage struct{}

type SwitchCategory struct {
	Category entity.Category
}

type Reset struct{}

// Drop carries a raw canvas coordinate relative to the puzzle canvas origin.
type Drop struct {
	PieceID int
	X       float64
	Y       float64
}

type ImageLoaded struct {
	Category entity.Category
	Image    image.Image
}

type ImageFailed struct {
	Category entity.Category
	Err      error
}

func (Start) Action() string          { return ActionStart }
func (ChooseCategory) Action() string { return ActionChooseCategory }
func (Back) Action() string           { return ActionBack }
func (ChangeImage) Action() string    { return ActionChangeImage }
func (SwitchCategory) Action() string { return ActionSwitchCategory }
func (Reset) Action() string          { return ActionReset }
func (Drop) Action() string           { return ActionDrop }
func (ImageLoaded) Action() string    { return ActionImageLoaded }
func (ImageFailed) Action() string    { return ActionImageFailed }
