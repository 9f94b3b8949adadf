package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer(t *testing.T) {
	t.Run("Opponent alternates between the two players", func(t *testing.T) {
		assert.Equal(t, Player2, Player1.Opponent())
		assert.Equal(t, Player1, Player2.Opponent())
	})

	t.Run("Marks", func(t *testing.T) {
		assert.Equal(t, "X", Player1.Mark())
		assert.Equal(t, "O", Player2.Mark())
	})

	t.Run("RandomPlayer always returns a valid player", func(t *testing.T) {
		for range 50 {
			assert.True(t, RandomPlayer().IsValid())
		}
	})

	t.Run("Unknown players are invalid", func(t *testing.T) {
		assert.False(t, Player("Player 3").IsValid())
		assert.False(t, Player("").IsValid())
	})
}

func TestOccupancy_Player(t *testing.T) {
	_, ok := Empty.Player()
	assert.False(t, ok)

	player, ok := Occupied(Player2).Player()
	assert.True(t, ok)
	assert.Equal(t, Player2, player)
}
