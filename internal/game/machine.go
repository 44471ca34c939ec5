package game

import (
	"fmt"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
)

// Machine is the single transition function of the game. It holds no per-player data.
type Machine struct {
	catalog  *entity.Catalog
	slicer   *jigsaw.Slicer
	shuffler *jigsaw.Shuffler
	newID    func() string
}

func NewMachine(catalog *entity.Catalog, slicer *jigsaw.Slicer, shuffler *jigsaw.Shuffler, newID func() string) *Machine {
	return &Machine{
		catalog:  catalog,
		slicer:   slicer,
		shuffler: shuffler,
		newID:    newID,
	}
}

func (that *Machine) Catalog() *entity.Catalog {
	return that.catalog
}

// Apply returns the state that follows cmd. The input state is never modified; on error it is
// returned unchanged.
func (that *Machine) Apply(state State, cmd Command) (State, []Event, error) {
	switch cmd := cmd.(type) {
	case nil:
		return state, nil, apperror.ErrUnknownCommand
	case ImageLoaded:
		return that.imageLoaded(state, cmd)
	case ImageFailed:
		return that.imageFailed(state, cmd)
	}

	switch state.Screen {
	case ScreenMenu:
		return that.applyMenu(state, cmd)
	case ScreenSelection:
		return that.applySelection(state, cmd)
	case ScreenPlaying:
		return that.applyPlaying(state, cmd)
	default:
		return state, nil, fmt.Errorf("%w: screen %q", apperror.ErrInvalidCommand, state.Screen)
	}
}

func (that *Machine) applyMenu(state State, cmd Command) (State, []Event, error) {
	if _, ok := cmd.(Start); !ok {
		return state, nil, invalid(state, cmd)
	}

	state.Screen = ScreenSelection

	return state, []Event{screenChanged(ScreenSelection)}, nil
}

func (that *Machine) applySelection(state State, cmd Command) (State, []Event, error) {
	switch cmd := cmd.(type) {
	case ChooseCategory:
		return that.enterPlaying(state, cmd.Category)
	case Back:
		state.Screen = ScreenMenu
		state.Category = ""

		return state, []Event{screenChanged(ScreenMenu)}, nil
	default:
		return state, nil, invalid(state, cmd)
	}
}

func (that *Machine) applyPlaying(state State, cmd Command) (State, []Event, error) {
	switch cmd := cmd.(type) {
	case Back:
		state.Screen = ScreenSelection
		state.Category = ""
		state.Board = nil
		state.Loading = false
		state.LoadError = ""

		return state, []Event{screenChanged(ScreenSelection)}, nil
	case ChangeImage:
		others := that.catalog.Others(state.Category)
		if len(others) == 0 {
			return state, nil, fmt.Errorf("%w: no other category", apperror.ErrUnknownCategory)
		}

		return that.enterPlaying(state, others[that.shuffler.Intn(len(others))])
	case SwitchCategory:
		if cmd.Category == state.Category {
			return state, nil, nil
		}

		return that.enterPlaying(state, cmd.Category)
	case Reset:
		return that.reset(state)
	case Drop:
		return that.drop(state, cmd)
	default:
		return state, nil, invalid(state, cmd)
	}
}

// enterPlaying discards any current board and asks the driver for the category image.
func (that *Machine) enterPlaying(state State, category entity.Category) (State, []Event, error) {
	puzzle, err := that.catalog.Get(category)
	if err != nil {
		return state, nil, fmt.Errorf("failed to enter puzzle: %w", err)
	}

	events := make([]Event, 0, 2)
	if state.Screen != ScreenPlaying {
		events = append(events, screenChanged(ScreenPlaying))
	}

	state.Screen = ScreenPlaying
	state.Category = category
	state.Board = nil
	state.Loading = true
	state.LoadError = ""

	events = append(events, Event{Kind: EventLoadRequested, Category: category, Asset: puzzle.Asset})

	return state, events, nil
}

func (that *Machine) imageLoaded(state State, cmd ImageLoaded) (State, []Event, error) {
	if !that.awaiting(state, cmd.Category) {
		return state, nil, nil
	}

	pieces, err := that.slicer.Slice(cmd.Image)
	if err == nil {
		err = that.shuffler.Shuffle(pieces, that.slicer.GridSize(), that.slicer.PieceSize())
	}

	if err != nil {
		return that.imageFailed(state, ImageFailed{Category: cmd.Category, Err: err})
	}

	state.Loading = false
	state.Board = jigsaw.NewBoard(that.newID(), that.slicer.GridSize(), that.slicer.PieceSize(), pieces)

	return state, []Event{
		{Kind: EventPuzzleReady, Category: cmd.Category},
		progressUpdated(0),
	}, nil
}

func (that *Machine) imageFailed(state State, cmd ImageFailed) (State, []Event, error) {
	if !that.awaiting(state, cmd.Category) {
		return state, nil, nil
	}

	message := apperror.ErrAssetLoad.Error()
	if cmd.Err != nil {
		message = fmt.Sprintf("%s: %v", message, cmd.Err)
	}

	state.Loading = false
	state.LoadError = message

	return state, []Event{{Kind: EventLoadFailed, Category: cmd.Category, Message: message}}, nil
}

// awaiting is false for image results of a puzzle the player already left.
func (that *Machine) awaiting(state State, category entity.Category) bool {
	return state.IsPlaying() && state.Loading && state.Category == category
}

func (that *Machine) reset(state State) (State, []Event, error) {
	if !state.IsReady() {
		return state, nil, apperror.ErrPuzzleNotLoaded
	}

	board := state.Board.Clone()
	if err := that.shuffler.Shuffle(board.Pieces, board.GridSize, board.CellSize); err != nil {
		return state, nil, fmt.Errorf("failed to reshuffle: %w", err)
	}

	board.ID = that.newID()
	board.Completed = false
	state.Board = board

	return state, []Event{progressUpdated(0)}, nil
}

// drop is ignored until the board exists.
func (that *Machine) drop(state State, cmd Drop) (State, []Event, error) {
	if !state.IsReady() {
		return state, nil, nil
	}

	next := state
	next.Board = state.Board.Clone()

	placement, err := next.Board.Place(cmd.PieceID, cmd.X, cmd.Y)
	if err != nil {
		return state, nil, fmt.Errorf("failed to place piece: %w", err)
	}

	progress := next.Board.Progress()

	events := make([]Event, 0, 3)
	if placement.JustPlaced {
		events = append(events, Event{Kind: EventPiecePlaced, Placement: &placement, Progress: progress})
	}
	events = append(events, progressUpdated(progress))

	if next.Board.MarkCompleteIfDone() {
		puzzle, err := that.catalog.Get(next.Category)
		if err != nil {
			return state, nil, fmt.Errorf("failed to complete puzzle: %w", err)
		}

		next.Session = next.Session.Complete(next.Category, puzzle.Points)
		events = append(events, Event{
			Kind:     EventPuzzleCompleted,
			Category: next.Category,
			Progress: progress,
			Points:   puzzle.Points,
			Fact:     puzzle.Fact,
		})
	}

	return next, events, nil
}

func invalid(state State, cmd Command) error {
	return fmt.Errorf("%w: %s on %s", apperror.ErrInvalidCommand, cmd.Action(), state.Screen)
}
