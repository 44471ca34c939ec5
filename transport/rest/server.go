package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type puzzleUseCase interface {
	Categories() []entity.Puzzle
	Stats(ctx context.Context, playerID string) (entity.Stats, error)
	Forget(ctx context.Context, playerID string) error
}

type Server struct {
	logger  *slog.Logger
	echo    *echo.Echo
	uPuzzle puzzleUseCase
}

func New(logger *slog.Logger, uPuzzle puzzleUseCase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	server := &Server{
		logger:  logger.With("component", "rest"),
		echo:    e,
		uPuzzle: uPuzzle,
	}

	e.GET("/ping", server.Ping)

	api := e.Group("/api")
	api.GET("/categories", server.Categories)
	api.GET("/players/:id/stats", server.Stats)
	api.DELETE("/players/:id", server.Forget)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - starts HTTP server. It returns nil once ctx is cancelled and the server has shut down.
func (that *Server) Start(ctx context.Context, port string) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
