package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, playerID string, state *game.State) error
	GetByPlayerID(ctx context.Context, playerID string) (*game.State, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type imageLoader interface {
	Load(ctx context.Context, asset string) (image.Image, error)
}

type gameMachine interface {
	Apply(state game.State, cmd game.Command) (game.State, []game.Event, error)
	Catalog() *entity.Catalog
}

// PuzzleManager runs player commands against the stored game state.
type PuzzleManager struct {
	logger *slog.Logger

	gameRepo    gameRepo
	imageLoader imageLoader
	machine     gameMachine

	locks *keyedMutex
}

func NewPuzzleManager(logger *slog.Logger, gameRepo gameRepo, imageLoader imageLoader, machine gameMachine) *PuzzleManager {
	return &PuzzleManager{
		logger: logger.With("component", "usecase"),

		gameRepo:    gameRepo,
		imageLoader: imageLoader,
		machine:     machine,

		locks: newKeyedMutex(),
	}
}

// Connect returns the player and their saved state. An empty or unknown id starts a new session.
func (that *PuzzleManager) Connect(ctx context.Context, playerID string) (*entity.Player, *game.State, error) {
	log := that.logger.With("method", "Connect")

	if playerID == "" {
		playerID = pkg.GenerateNewSessionID()
		log.Info("new player session", "player_id", playerID)
	}

	unlock := that.locks.Lock(playerID)
	defer unlock()

	state, err := that.getOrCreateState(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return &entity.Player{ID: playerID}, state, nil
}

// Dispatch applies cmd to the player's state, loads any requested image and saves the result.
// On a rejected command the returned state is the unchanged stored one.
func (that *PuzzleManager) Dispatch(ctx context.Context, playerID string, cmd game.Command) (*game.State, []game.Event, error) {
	log := that.logger.With("method", "Dispatch", "player_id", playerID)

	if playerID == "" {
		return nil, nil, apperror.ErrPlayerIDRequired
	}

	unlock := that.locks.Lock(playerID)
	defer unlock()

	current, err := that.getOrCreateState(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game state: %w", err)
	}

	next, events, err := that.machine.Apply(*current, cmd)
	if err != nil {
		return current, nil, fmt.Errorf("failed to apply %s: %w", commandAction(cmd), err)
	}

	next, events = that.loadRequested(ctx, next, events)

	if err = that.gameRepo.CreateOrUpdate(ctx, playerID, &next); err != nil {
		return nil, nil, fmt.Errorf("failed to save game state: %w", err)
	}

	log.Debug("command applied", "action", cmd.Action(), "screen", next.Screen, "events", len(events))

	return &next, events, nil
}

// Stats returns the progression summary of a player.
func (that *PuzzleManager) Stats(ctx context.Context, playerID string) (entity.Stats, error) {
	state, err := that.gameRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get game state: %w", err)
	}

	return state.Session.Stats(), nil
}

func (that *PuzzleManager) Categories() []entity.Puzzle {
	return that.machine.Catalog().List()
}

// loadRequested decodes the image of every load:requested event and feeds the result back.
func (that *PuzzleManager) loadRequested(ctx context.Context, state game.State, events []game.Event) (game.State, []game.Event) {
	log := that.logger.With("method", "loadRequested")

	out := make([]game.Event, 0, len(events))

	for _, event := range events {
		out = append(out, event)
		if event.Kind != game.EventLoadRequested {
			continue
		}

		var cmd game.Command

		img, err := that.imageLoader.Load(ctx, event.Asset)
		if err != nil {
			log.Warn("failed to load puzzle image", "category", event.Category, "error", err)
			cmd = game.ImageFailed{Category: event.Category, Err: err}
		} else {
			cmd = game.ImageLoaded{Category: event.Category, Image: img}
		}

		next, loaded, err := that.machine.Apply(state, cmd)
		if err != nil {
			log.Error("failed to apply image result", "category", event.Category, "error", err)
			continue
		}

		state = next
		out = append(out, loaded...)
	}

	return state, out
}

func (that *PuzzleManager) getOrCreateState(ctx context.Context, playerID string) (*game.State, error) {
	state, err := that.gameRepo.GetByPlayerID(ctx, playerID)
	if err == nil {
		return state, nil
	}

	if !errors.Is(err, apperror.ErrStateNotFound) {
		return nil, err
	}

	fresh := game.NewState()
	if err = that.gameRepo.CreateOrUpdate(ctx, playerID, &fresh); err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	return &fresh, nil
}

func commandAction(cmd game.Command) string {
	if cmd == nil {
		return "<nil>"
	}

	return cmd.Action()
}

// Forget drops the saved state of a player. The next Connect starts a fresh session.
func (that *PuzzleManager) Forget(ctx context.Context, playerID string) error {
	unlock := that.locks.Lock(playerID)
	defer unlock()

	if err := that.gameRepo.DeleteByPlayerID(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	that.logger.Info("player session forgotten", "player_id", playerID)

	return nil
}
