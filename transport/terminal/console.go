package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameManager interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (entity.GameState, error)
	Dispatch(ctx context.Context, sessionID string, action tictactoe.Action) (entity.GameState, error)
	EndSession(ctx context.Context, sessionID string) error
}

// Console is the text front end of one session: it prints the game and forwards typed moves.
type Console struct {
	logger    *slog.Logger
	manager   gameManager
	sessionID string

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, manager gameManager, sessionID string, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		manager:   manager,
		sessionID: sessionID,
		in:        in,
		out:       out,
	}
}

// Run - reads commands until quit, end, end of input or ctx cancellation.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "session", that.sessionID)

	game, err := that.manager.GetOrCreateGame(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	that.printf("session %s\n%s\n%s", that.sessionID, helpText, Render(game))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := scanLines(ctx, that.in, log)

	for {
		that.printf("> ")

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			cmd, action, err := parseCommand(line)
			if err != nil {
				that.printf("%s\n", err)
				continue
			}

			switch cmd {
			case commandNone:
				continue
			case commandQuit:
				return nil
			case commandEnd:
				if err = that.manager.EndSession(ctx, that.sessionID); err != nil {
					return fmt.Errorf("failed to end session: %w", err)
				}
				that.printf("session %s ended\n", that.sessionID)
				return nil
			case commandHelp:
				that.printf("%s", helpText)
				continue
			case commandAction:
			}

			game, err = that.manager.Dispatch(ctx, that.sessionID, action)
			if errors.Is(err, apperror.ErrOutOfBounds) {
				that.printf("there is no such cell on a %dx%d board\n", game.Board.Size, game.Board.Size)
				continue
			}

			if err != nil {
				return fmt.Errorf("failed to dispatch action: %w", err)
			}

			that.printf("%s", Render(game))
			if game.IsFinished() {
				that.printf("type new to play again\n")
			}
		}
	}
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

// scanLines - streams input lines, the channel is closed at end of input.
func scanLines(ctx context.Context, in io.Reader, log *slog.Logger) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Error("failed to read input", "error", err)
		}
	}()

	return lines
}
