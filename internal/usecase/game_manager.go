package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game entity.GameState) error
	GetByID(ctx context.Context, sessionID string) (entity.GameState, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type gameController interface {
	NewGame() entity.GameState
	Apply(state entity.GameState, action tictactoe.Action) (entity.GameState, error)
}

// GameManager serializes actions per session and keeps the current state in the repository.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	controller gameController

	locks *xsync.MapOf[string, *sync.Mutex]
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		gameRepo:   gameRepo,
		controller: controller,
		locks:      xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// StartSession - creates a session holding a fresh game.
func (that *GameManager) StartSession(ctx context.Context) (string, entity.GameState, error) {
	sessionID := uuid.NewString()

	game := that.controller.NewGame()
	if err := that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return "", entity.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("session started", "session", sessionID, "starting_player", game.ActivePlayer)

	return sessionID, game, nil
}

// GetOrCreateGame - returns the session's current game, starting one if the session has none.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (entity.GameState, error) {
	if sessionID == "" {
		return entity.GameState{}, apperror.ErrInvalidSession
	}

	unlock := that.lock(sessionID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return entity.GameState{}, fmt.Errorf("failed to get game: %w", err)
	}

	game = that.controller.NewGame()
	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "session", sessionID, "starting_player", game.ActivePlayer)

	return game, nil
}

// Dispatch - applies the action to the session's current game and stores the result.
// A failed action leaves the stored game untouched.
func (that *GameManager) Dispatch(ctx context.Context, sessionID string, action tictactoe.Action) (entity.GameState, error) {
	log := that.logger.With("method", "Dispatch", "session", sessionID)

	if sessionID == "" {
		return entity.GameState{}, apperror.ErrInvalidSession
	}

	unlock := that.lock(sessionID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get game: %w", err)
	}

	next, err := that.controller.Apply(game, action)
	if err != nil {
		if errors.Is(err, apperror.ErrOutOfBounds) {
			log.Warn("action targets a cell outside the board", "action", fmt.Sprintf("%+v", action), "error", err)
		}
		return game, fmt.Errorf("failed to apply action: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, next); err != nil {
		return game, fmt.Errorf("failed to update game: %w", err)
	}

	if next.Phase != game.Phase {
		log.Info("phase changed", "from", game.Phase, "to", next.Phase, "active_player", next.ActivePlayer)
	}

	if next.IsFinished() && !game.IsFinished() {
		log.Info("game finished", "status", next.Status(), "winning_cells", next.WinningCells())
	}

	return next, nil
}

// EndSession - forgets the session's game.
// The session mutex stays in the lock map: a caller may already be queued on it.
func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	unlock := that.lock(sessionID)
	err := that.gameRepo.DeleteByID(ctx, sessionID)
	unlock()

	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("session ended", "session", sessionID)

	return nil
}

func (that *GameManager) lock(sessionID string) func() {
	mu, _ := that.locks.LoadOrCompute(sessionID, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	mu.Lock()

	return mu.Unlock
}
