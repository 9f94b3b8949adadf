package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wonGame(t *testing.T) entity.GameState {
	t.Helper()

	board := entity.NewBoard(3)
	for _, pos := range []entity.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}} {
		var err error
		board, err = board.WithOccupancy(pos.X, pos.Y, entity.Player2)
		require.NoError(t, err)
	}

	return entity.GameState{
		ActivePlayer: entity.Player2,
		Board:        board.WithWinningFlags([]entity.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}),
		Phase:        entity.PhaseWon,
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Minute)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, "123", wonGame(t))

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored won game
		game := wonGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "123", game))

		// When: GetByID is called with the session id
		retrievedGame, err := gameRepo.GetByID(ctx, "123")

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByID is called with an unknown session
		_, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "123", wonGame(t)))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, "123")
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
