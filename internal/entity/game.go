package entity

import "fmt"

type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseDrawn   Phase = "drawn"
)

// GameState is a snapshot of a game. Transitions produce new values.
type GameState struct {
	ActivePlayer Player `json:"active_player"`
	Board        Board  `json:"board"`
	Phase        Phase  `json:"phase"`
}

func (that GameState) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that GameState) IsFinished() bool {
	return that.Phase == PhaseWon || that.Phase == PhaseDrawn
}

// Status - returns the human-readable phase message.
func (that GameState) Status() string {
	switch that.Phase {
	case PhasePlaying:
		return fmt.Sprintf("It's %s's turn", that.ActivePlayer)
	case PhaseWon:
		return fmt.Sprintf("%s won!", that.ActivePlayer)
	case PhaseDrawn:
		return "nobody wins =("
	default:
		return ""
	}
}

// WinningCells - returns the positions marked as winning, empty unless the game is won.
func (that GameState) WinningCells() []Position {
	var winning []Position
	for _, cell := range that.Board.Cells {
		if cell.Winning {
			winning = append(winning, cell.Position())
		}
	}

	return winning
}
