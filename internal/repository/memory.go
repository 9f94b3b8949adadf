package repository

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryGame struct {
	games *xsync.MapOf[string, entity.GameState]
}

// NewMemoryGameRepository - process local repository, states are lost on exit.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: xsync.NewMapOf[string, entity.GameState](),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, sessionID string, game entity.GameState) error {
	that.games.Store(sessionID, game)
	return nil
}

func (that *memoryGame) GetByID(_ context.Context, sessionID string) (entity.GameState, error) {
	game, ok := that.games.Load(sessionID)
	if !ok {
		return entity.GameState{}, apperror.ErrGameNotFound
	}

	return game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, sessionID string) error {
	if _, ok := that.games.LoadAndDelete(sessionID); !ok {
		return apperror.ErrGameNotFound
	}

	return nil
}
