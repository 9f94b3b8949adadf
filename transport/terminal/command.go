package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrInvalidCommand = errors.New("unknown command, type help")

type command int

const (
	commandNone command = iota
	commandAction
	commandHelp
	commandQuit
	commandEnd
)

const helpText = `commands:
  x y   claim the cell in column x, row y (both start at 0)
  new   start a new game
  help  show this message
  end   forget this session and leave
  quit  leave, the session can be resumed
`

// parseCommand - turns an input line into an action. Blank lines yield commandNone.
func parseCommand(line string) (command, tictactoe.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return commandNone, nil, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return commandQuit, nil, nil
	case "help", "?", "h":
		return commandHelp, nil, nil
	case "end":
		return commandEnd, nil, nil
	case "new", "n":
		return commandAction, tictactoe.NewGame{}, nil
	}

	if len(fields) != 2 {
		return commandNone, nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return commandNone, nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return commandNone, nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}

	return commandAction, tictactoe.CellSelected{X: x, Y: y}, nil
}
