package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	mockedRest "github.com/rocketscienceinc/ecopuzzle-backend/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestServer(t *testing.T) (*Server, *mockedRest.MockpuzzleUseCase) {
	t.Helper()

	mockUseCase := mockedRest.NewMockpuzzleUseCase(t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return New(logger, mockUseCase), mockUseCase
}

func serve(server *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestServer_Ping(t *testing.T) {
	server, _ := newTestServer(t)

	rec := serve(server, http.MethodGet, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_Categories(t *testing.T) {
	// Given: the default catalog
	server, mockUseCase := newTestServer(t)

	mockUseCase.EXPECT().
		Categories().
		Return(entity.DefaultCatalog().List()).
		Once()

	// When: the categories are requested
	rec := serve(server, http.MethodGet, "/api/categories")

	// Then: all four puzzles are listed in order
	require.Equal(t, http.StatusOK, rec.Code)

	var puzzles []entity.Puzzle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &puzzles))
	require.Len(t, puzzles, 4)
	assert.Equal(t, entity.CategoryForest, puzzles[0].Category)
	assert.Equal(t, "forest-puzzle.jpg", puzzles[0].Asset)
}

func TestServer_Stats(t *testing.T) {
	t.Run("Returns the stats of a player", func(t *testing.T) {
		server, mockUseCase := newTestServer(t)

		session := entity.NewSession().
			Complete(entity.CategoryForest, 100).
			Complete(entity.CategoryForest, 100)
		mockUseCase.EXPECT().
			Stats(mock.Anything, "p1").
			Return(session.Stats(), nil).
			Once()

		rec := serve(server, http.MethodGet, "/api/players/p1/stats")

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.InDelta(t, 200, body["points"], 0)
		assert.InDelta(t, 3, body["level"], 0)
		assert.Equal(t, []any{"forest_master", "forest_master"}, body["badges"])
	})

	t.Run("Returns 404 for an unknown player", func(t *testing.T) {
		server, mockUseCase := newTestServer(t)

		mockUseCase.EXPECT().
			Stats(mock.Anything, "nobody").
			Return(entity.Stats{}, fmt.Errorf("failed to get game state: %w", apperror.ErrStateNotFound)).
			Once()

		rec := serve(server, http.MethodGet, "/api/players/nobody/stats")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Returns 500 when the store fails", func(t *testing.T) {
		server, mockUseCase := newTestServer(t)

		mockUseCase.EXPECT().
			Stats(mock.Anything, "p1").
			Return(entity.Stats{}, errRedisDown).
			Once()

		rec := serve(server, http.MethodGet, "/api/players/p1/stats")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), errRedisDown.Error())
	})
}

func TestServer_Forget(t *testing.T) {
	t.Run("Deletes the player state", func(t *testing.T) {
		server, mockUseCase := newTestServer(t)

		mockUseCase.EXPECT().
			Forget(mock.Anything, "p1").
			Return(nil).
			Once()

		rec := serve(server, http.MethodDelete, "/api/players/p1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Returns 404 for an unknown player", func(t *testing.T) {
		server, mockUseCase := newTestServer(t)

		mockUseCase.EXPECT().
			Forget(mock.Anything, "p1").
			Return(apperror.ErrStateNotFound).
			Once()

		rec := serve(server, http.MethodDelete, "/api/players/p1")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
