package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) Categories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, that.uPuzzle.Categories())
}

func (that *Server) Stats(ctx echo.Context) error {
	log := that.logger.With("method", "Stats")

	playerID := ctx.Param("id")

	stats, err := that.uPuzzle.Stats(ctx.Request().Context(), playerID)
	if errors.Is(err, apperror.ErrStateNotFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "player not found"})
	}

	if err != nil {
		log.Error("failed to get stats", "player_id", playerID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (that *Server) Forget(ctx echo.Context) error {
	log := that.logger.With("method", "Forget")

	playerID := ctx.Param("id")

	err := that.uPuzzle.Forget(ctx.Request().Context(), playerID)
	if errors.Is(err, apperror.ErrStateNotFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "player not found"})
	}

	if err != nil {
		log.Error("failed to forget player", "player_id", playerID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}

	return ctx.NoContent(http.StatusNoContent)
}
