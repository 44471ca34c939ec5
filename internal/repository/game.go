package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
)

const gameKeyPrefix = "game:"

// GameRepository stores the game state of each player. Entries expire after the TTL.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, playerID string, state *game.State) error
	GetByPlayerID(ctx context.Context, playerID string) (*game.State, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, playerID string, state *game.State) error {
	if playerID == "" {
		return apperror.ErrPlayerIDRequired
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+playerID, stateJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game state: %w", err)
	}

	return nil
}

func (that *dbGame) GetByPlayerID(ctx context.Context, playerID string) (*game.State, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+playerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrStateNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state game.State
	if err = json.Unmarshal(response, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return &state, nil
}

func (that *dbGame) DeleteByPlayerID(ctx context.Context, playerID string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+playerID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrStateNotFound
	}

	return nil
}
