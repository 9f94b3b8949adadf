package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
	"golang.org/x/sync/errgroup"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs a terminal game session. An empty sessionID starts a new session.
func RunApp(logger *slog.Logger, conf *config.Config, sessionID string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameController := tictactoe.NewGameController(conf.BoardSize)
	gameManager := usecase.NewGameManager(logger, gameRepo, gameController)

	if sessionID == "" {
		sessionID, _, err = gameManager.StartSession(ctx)
		if err != nil {
			return fmt.Errorf("could not start session: %w", err)
		}
	}

	console := terminal.New(logger, gameManager, sessionID, in, out)

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		defer cancel()

		log.Info("Starting console", "session", sessionID, "board_size", gameController.BoardSize(), "storage", conf.Storage)
		if consoleErr := console.Run(ctx); consoleErr != nil {
			return fmt.Errorf("console error: %w", consoleErr)
		}
		return nil
	})

	errg.Go(func() error {
		<-ctx.Done()
		log.Info("Application context canceled, shutting down")
		return nil
	})

	if err = errg.Wait(); err != nil {
		return err
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.SessionTTL), closeFn, nil
}
