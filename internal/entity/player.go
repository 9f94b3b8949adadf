package entity

import "math/rand"

type Player string

const (
	Player1 Player = "Player 1"
	Player2 Player = "Player 2"
)

func (that Player) IsValid() bool {
	return that == Player1 || that == Player2
}

// Opponent - returns the player who moves after this one.
func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// Mark - returns the symbol drawn for the player's cells.
func (that Player) Mark() string {
	switch that {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return " "
	}
}

func (that Player) String() string {
	return string(that)
}

func RandomPlayer() Player {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return Player1
	}
	return Player2
}
