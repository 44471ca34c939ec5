package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/assets"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/config"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/pkg"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/repository"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/repository/storage"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/usecase"
	"github.com/rocketscienceinc/ecopuzzle-backend/transport/rest"
	"github.com/rocketscienceinc/ecopuzzle-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	machine, err := NewMachine(conf)
	if err != nil {
		return fmt.Errorf("could not build puzzle machine: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.StateTTL)
	imageLoader := assets.NewLoader(logger, os.DirFS(conf.Puzzle.AssetsDir))
	puzzleUseCase := usecase.NewPuzzleManager(logger, gameRepo, imageLoader, machine)

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, puzzleUseCase).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, puzzleUseCase).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// NewMachine builds the puzzle state machine from the puzzle section of the config.
func NewMachine(conf *config.Config) (*game.Machine, error) {
	slicer, err := jigsaw.NewSlicer(
		conf.Puzzle.GridSize,
		conf.Puzzle.PieceSize,
		jigsaw.WithBorder(conf.Puzzle.BorderWidth, jigsaw.BorderColor),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid slicer config: %w", err)
	}

	staging := jigsaw.Region{
		X:      conf.Puzzle.Staging.X,
		Y:      conf.Puzzle.Staging.Y,
		Width:  conf.Puzzle.Staging.Width,
		Height: conf.Puzzle.Staging.Height,
	}

	grid := jigsaw.Region{
		Width:  float64(conf.Puzzle.GridSize * conf.Puzzle.PieceSize),
		Height: float64(conf.Puzzle.GridSize * conf.Puzzle.PieceSize),
	}
	if staging.Intersects(grid) {
		return nil, fmt.Errorf("%w: %+v", apperror.ErrStagingOverlap, staging)
	}

	shuffler := jigsaw.NewShuffler(conf.Puzzle.Seed, staging)

	return game.NewMachine(entity.DefaultCatalog(), slicer, shuffler, pkg.GenerateBoardID), nil
}
