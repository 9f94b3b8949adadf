package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Render - draws the board with column and row numbers, winning cells in brackets, then the status line.
func Render(game entity.GameState) string {
	size := game.Board.Size

	header := make([]string, 0, size)
	divider := make([]string, 0, size)
	for x := range size {
		header = append(header, fmt.Sprintf(" %-2d", x))
		divider = append(divider, "---")
	}

	var sb strings.Builder
	sb.WriteString("   " + strings.Join(header, " ") + "\n")

	for y := range size {
		row := make([]string, 0, size)
		for x := range size {
			cell, err := game.Board.CellAt(x, y)
			if err != nil {
				row = append(row, " ? ")
				continue
			}
			row = append(row, renderCell(cell))
		}

		fmt.Fprintf(&sb, "%2d %s\n", y, strings.Join(row, "|"))
		if y < size-1 {
			sb.WriteString("   " + strings.Join(divider, "+") + "\n")
		}
	}

	sb.WriteString(game.Status() + "\n")

	return sb.String()
}

func renderCell(cell entity.Cell) string {
	mark := " "
	if player, ok := cell.Occupancy.Player(); ok {
		mark = player.Mark()
	}

	if cell.Winning {
		return "[" + mark + "]"
	}

	return " " + mark + " "
}
