package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameRepository stores the current state of each session, not its history.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game entity.GameState) error
	GetByID(ctx context.Context, sessionID string) (entity.GameState, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - redis backed repository, keys expire after ttl (0 keeps them forever).
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(sessionID string) string {
	return "game:" + sessionID
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, sessionID string, game entity.GameState) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(sessionID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, sessionID string) (entity.GameState, error) {
	response, err := that.client.Get(ctx, gameKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.GameState{}, apperror.ErrGameNotFound
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.GameState
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, gameKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}
