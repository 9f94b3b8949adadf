package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const DefaultBoardSize = 3

// GameController owns the state transition function. It keeps no game state of its own,
// callers must not run Apply concurrently on the same game.
type GameController struct {
	size        int
	pickStarter func() entity.Player
}

type Option func(*GameController)

// WithStartingPlayer - replaces the random choice of the player who opens a new game.
func WithStartingPlayer(pick func() entity.Player) Option {
	return func(that *GameController) {
		that.pickStarter = pick
	}
}

func NewGameController(size int, opts ...Option) *GameController {
	if size < 1 {
		size = DefaultBoardSize
	}

	controller := &GameController{
		size:        size,
		pickStarter: entity.RandomPlayer,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

func (that *GameController) BoardSize() int {
	return that.size
}

// NewGame - returns a fresh game with an empty board and a random starting player.
func (that *GameController) NewGame() entity.GameState {
	return entity.GameState{
		ActivePlayer: that.pickStarter(),
		Board:        entity.NewBoard(that.size),
		Phase:        entity.PhasePlaying,
	}
}

// Apply - maps (state, action) to the next state. Rule violations return the state unchanged,
// only coordinates outside the board fail, with apperror.ErrOutOfBounds.
func (that *GameController) Apply(state entity.GameState, action Action) (entity.GameState, error) {
	switch act := action.(type) {
	case NewGame:
		return that.NewGame(), nil
	case CellSelected:
		return selectCell(state, act.X, act.Y)
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

func selectCell(state entity.GameState, x, y int) (entity.GameState, error) {
	if !state.IsPlaying() {
		return state, nil
	}

	cell, err := state.Board.CellAt(x, y)
	if err != nil {
		return state, fmt.Errorf("invalid cell: %w", err)
	}

	if !cell.IsEmpty() {
		return state, nil
	}

	updatedBoard, err := state.Board.WithOccupancy(x, y, state.ActivePlayer)
	if err != nil {
		return state, fmt.Errorf("invalid cell: %w", err)
	}

	if line, ok := findWinningLine(updatedBoard); ok {
		return entity.GameState{
			ActivePlayer: state.ActivePlayer,
			Board:        updatedBoard.WithWinningFlags(line),
			Phase:        entity.PhaseWon,
		}, nil
	}

	if updatedBoard.AllOccupied() {
		return entity.GameState{
			ActivePlayer: state.ActivePlayer,
			Board:        updatedBoard,
			Phase:        entity.PhaseDrawn,
		}, nil
	}

	return entity.GameState{
		ActivePlayer: state.ActivePlayer.Opponent(),
		Board:        updatedBoard,
		Phase:        entity.PhasePlaying,
	}, nil
}

// findWinningLine - returns the first line, in entity.Lines order, held entirely by one player.
func findWinningLine(board entity.Board) (entity.Line, bool) {
	for line := range entity.Lines(board.Size) {
		cells, err := board.LineCells(line)
		if err != nil || len(cells) == 0 {
			continue
		}

		owner, ok := cells[0].Occupancy.Player()
		if !ok {
			continue
		}

		if isHeldBy(cells, owner) {
			return line, true
		}
	}

	return nil, false
}

func isHeldBy(cells []entity.Cell, player entity.Player) bool {
	for _, cell := range cells {
		if cell.Occupancy != entity.Occupied(player) {
			return false
		}
	}

	return true
}
