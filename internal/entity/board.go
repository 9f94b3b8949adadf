package entity

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Occupancy is either Empty or Occupied(player).
type Occupancy string

const Empty Occupancy = ""

func Occupied(player Player) Occupancy {
	return Occupancy(player)
}

// Player - returns the occupying player, false for an empty cell.
func (that Occupancy) Player() (Player, bool) {
	if that == Empty {
		return "", false
	}
	return Player(that), true
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Line is a row, a column or a full diagonal.
type Line []Position

type Cell struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Occupancy Occupancy `json:"occupancy"`
	Winning   bool      `json:"winning"`
}

func (that Cell) IsEmpty() bool {
	return that.Occupancy == Empty
}

func (that Cell) Position() Position {
	return Position{X: that.X, Y: that.Y}
}

// Board holds Size*Size cells in row-major order. Methods never modify the receiver.
type Board struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

func NewBoard(size int) Board {
	cells := make([]Cell, 0, size*size)
	for y := range size {
		for x := range size {
			cells = append(cells, Cell{X: x, Y: y, Occupancy: Empty})
		}
	}

	return Board{Size: size, Cells: cells}
}

func (that Board) CellAt(x, y int) (Cell, error) {
	idx, err := that.index(x, y)
	if err != nil {
		return Cell{}, err
	}

	return that.Cells[idx], nil
}

// WithOccupancy - returns a copy of the board with the cell at (x, y) claimed by the player.
// Prior occupancy is not checked.
func (that Board) WithOccupancy(x, y int, player Player) (Board, error) {
	idx, err := that.index(x, y)
	if err != nil {
		return that, err
	}

	cells := slices.Clone(that.Cells)
	cells[idx].Occupancy = Occupied(player)

	return Board{Size: that.Size, Cells: cells}, nil
}

// WithWinningFlags - returns a copy of the board where exactly the given cells are winning.
func (that Board) WithWinningFlags(winning []Position) Board {
	cells := slices.Clone(that.Cells)
	for i := range cells {
		cells[i].Winning = slices.Contains(winning, cells[i].Position())
	}

	return Board{Size: that.Size, Cells: cells}
}

func (that Board) AllOccupied() bool {
	for _, cell := range that.Cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// LineCells - resolves the positions of a line against the board.
func (that Board) LineCells(line Line) ([]Cell, error) {
	cells := make([]Cell, 0, len(line))
	for _, pos := range line {
		cell, err := that.CellAt(pos.X, pos.Y)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

func (that Board) index(x, y int) (int, error) {
	if x < 0 || x >= that.Size || y < 0 || y >= that.Size {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrOutOfBounds, x, y, that.Size, that.Size)
	}

	idx := y*that.Size + x
	if idx >= len(that.Cells) {
		return 0, fmt.Errorf("%w: board has %d cells", apperror.ErrOutOfBounds, len(that.Cells))
	}

	return idx, nil
}

// Lines - yields the 2*size+2 candidate winning lines: rows by y, columns by x,
// the main diagonal, then the anti-diagonal.
func Lines(size int) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for y := range size {
			row := make(Line, 0, size)
			for x := range size {
				row = append(row, Position{X: x, Y: y})
			}
			if !yield(row) {
				return
			}
		}

		for x := range size {
			column := make(Line, 0, size)
			for y := range size {
				column = append(column, Position{X: x, Y: y})
			}
			if !yield(column) {
				return
			}
		}

		diagonal := make(Line, 0, size)
		antiDiagonal := make(Line, 0, size)
		for i := range size {
			diagonal = append(diagonal, Position{X: i, Y: i})
			antiDiagonal = append(antiDiagonal, Position{X: i, Y: size - 1 - i})
		}

		if !yield(diagonal) {
			return
		}
		yield(antiDiagonal)
	}
}
