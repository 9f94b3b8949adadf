package tictactoe

// Action is an input to GameController.Apply: CellSelected or NewGame.
type Action interface {
	isAction()
}

// CellSelected - a player picked the cell at (X, Y).
type CellSelected struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewGame - discard the current game and start over.
type NewGame struct{}

func (CellSelected) isAction() {}

func (NewGame) isAction() {}
