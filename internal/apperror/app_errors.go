package apperror

import "errors"

var (
	ErrInvalidCommand   = errors.New("command is not allowed on this screen")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrPieceNotFound    = errors.New("piece not found")
	ErrInvalidDrop      = errors.New("drop coordinate is not a finite number")
	ErrPuzzleNotLoaded  = errors.New("puzzle is not loaded")
	ErrStateNotFound    = errors.New("game state not found")
	ErrAssetLoad        = errors.New("failed to load puzzle image")
	ErrImageTooSmall    = errors.New("image is smaller than the grid")
	ErrInvalidGrid      = errors.New("invalid grid dimensions")
	ErrStagingOverlap   = errors.New("staging region overlaps the solution grid")
	ErrPlayerIDRequired = errors.New("player id is required")
)
