package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
	mockedWebSocket "github.com/rocketscienceinc/ecopuzzle-backend/mocks/websocket"
)

const testPlayerID = "player-abc"

var errRedisDown = errors.New("redis down")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) (*mockedWebSocket.MockpuzzleUseCase, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	mockUseCase := mockedWebSocket.NewMockpuzzleUseCase(t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	httpServer := httptest.NewServer(New(logger, mockUseCase).Handler(ctx))
	t.Cleanup(func() {
		cancel()
		httpServer.Close()
	})

	return mockUseCase, "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
}

func dial(t *testing.T, url string, header http.Header) (*websocket.Conn, *http.Response) {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn, resp
}

func withSession(playerID string) http.Header {
	return http.Header{"Cookie": {fmt.Sprintf("%s=%s", sessionCookieName, playerID)}}
}

func send(t *testing.T, conn *websocket.Conn, raw string) (Message, ResponsePayload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(raw)))

	_, body, err := conn.ReadMessage()
	require.NoError(t, err)

	var message Message
	require.NoError(t, json.Unmarshal(body, &message))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message, payload
}

const testImageData = "data:image/png;base64,AAAA"

// playingState is a ready board whose pieces carry image data.
func playingState() game.State {
	state := game.NewState()
	state.Screen = game.ScreenPlaying
	state.Category = entity.CategoryForest
	state.Board = jigsaw.NewBoard("board-1", 2, 120, []entity.Piece{
		{ID: 0, CorrectX: 0, CorrectY: 0, CurrentX: 300, CurrentY: 10, ImageData: testImageData},
		{ID: 1, CorrectX: 120, CorrectY: 0, CurrentX: 360, CurrentY: 40, ImageData: testImageData},
	})

	return state
}

func TestServer_Connect(t *testing.T) {
	t.Run("Issues a session cookie when the request has none", func(t *testing.T) {
		// Given: a client without a session cookie
		mockUseCase, url := newTestServer(t)

		mockUseCase.EXPECT().
			Connect(mock.Anything, mock.AnythingOfType("string")).
			RunAndReturn(func(_ context.Context, id string) (*entity.Player, *game.State, error) {
				state := game.NewState()
				return &entity.Player{ID: id}, &state, nil
			}).
			Once()

		conn, resp := dial(t, url, nil)

		// When: it connects
		message, payload := send(t, conn, `{"action":"connect"}`)

		// Then: the cookie value is the player id of the session
		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.Equal(t, actionConnect, message.Action)
		require.NotNil(t, payload.Player)
		assert.Equal(t, cookies[0].Value, payload.Player.ID)
		assert.Equal(t, game.ScreenMenu, payload.State.Screen)
	})

	t.Run("Uses the player id of an existing cookie", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		mockUseCase.EXPECT().
			Connect(mock.Anything, testPlayerID).
			Return(&entity.Player{ID: testPlayerID}, &state, nil).
			Once()

		conn, resp := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"connect"}`)

		assert.Empty(t, resp.Cookies())
		assert.Equal(t, testPlayerID, payload.Player.ID)
	})

	t.Run("A player id in the payload takes precedence", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		mockUseCase.EXPECT().
			Connect(mock.Anything, "restored").
			Return(&entity.Player{ID: "restored"}, &state, nil).
			Once()
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, "restored", game.Start{}).
			Return(&state, nil, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"connect","payload":{"player":{"id":"restored"}}}`)
		require.Equal(t, "restored", payload.Player.ID)

		// later commands run for the restored player
		_, payload = send(t, conn, `{"action":"menu:start"}`)
		assert.Empty(t, payload.Error)
	})

	t.Run("Reports a failed connect", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		mockUseCase.EXPECT().
			Connect(mock.Anything, testPlayerID).
			Return(nil, nil, errRedisDown).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"connect"}`)

		assert.Equal(t, "failed to connect player", payload.Error)
		assert.Nil(t, payload.Player)
	})
}

func TestServer_Commands(t *testing.T) {
	t.Run("category:choose dispatches the chosen category", func(t *testing.T) {
		// Given: a use case that accepts the choice
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		state.Screen = game.ScreenPlaying
		state.Category = entity.CategoryOcean
		events := []game.Event{{Kind: game.EventScreenChanged, Screen: game.ScreenPlaying}}

		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.ChooseCategory{Category: entity.CategoryOcean}).
			Return(&state, events, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))

		// When: the ocean category is chosen
		message, payload := send(t, conn, `{"action":"category:choose","payload":{"category":"ocean"}}`)

		// Then: the new state and its events are sent back
		assert.Equal(t, game.ActionChooseCategory, message.Action)
		assert.Empty(t, payload.Error)
		assert.Equal(t, entity.CategoryOcean, payload.State.Category)
		require.Len(t, payload.Events, 1)
		assert.Equal(t, game.EventScreenChanged, payload.Events[0].Kind)
	})

	t.Run("piece:drop passes the raw coordinates", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.Drop{PieceID: 0, X: 130.5, Y: -4}).
			Return(&state, nil, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"piece:drop","payload":{"piece_id":0,"x":130.5,"y":-4}}`)

		assert.Empty(t, payload.Error)
	})

	t.Run("piece:drop responses leave out piece images", func(t *testing.T) {
		// Given: a drop applied to a board with images
		mockUseCase, url := newTestServer(t)

		state := playingState()
		events := []game.Event{{Kind: game.EventPiecePlaced, Placement: &jigsaw.Placement{PieceID: 0, Placed: true}}}
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.Drop{PieceID: 0, X: 10, Y: 10}).
			Return(&state, events, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))

		// When: the piece is dropped
		_, payload := send(t, conn, `{"action":"piece:drop","payload":{"piece_id":0,"x":10,"y":10}}`)

		// Then: the board comes back without image data and the stored state is untouched
		require.NotNil(t, payload.State)
		require.NotNil(t, payload.State.Board)
		require.Len(t, payload.State.Board.Pieces, 2)
		for _, piece := range payload.State.Board.Pieces {
			assert.Empty(t, piece.ImageData)
		}
		assert.InDelta(t, 360.0, payload.State.Board.Pieces[1].CurrentX, 0)
		assert.Equal(t, testImageData, state.Board.Pieces[0].ImageData)
	})

	t.Run("puzzle:ready responses carry piece images", func(t *testing.T) {
		// Given: a category choice that loads a new board
		mockUseCase, url := newTestServer(t)

		state := playingState()
		events := []game.Event{
			{Kind: game.EventPuzzleReady, Category: entity.CategoryForest},
		}
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.ChooseCategory{Category: entity.CategoryForest}).
			Return(&state, events, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))

		// When: the category is chosen
		_, payload := send(t, conn, `{"action":"category:choose","payload":{"category":"forest"}}`)

		// Then: every piece arrives with its image
		require.NotNil(t, payload.State)
		require.NotNil(t, payload.State.Board)
		for _, piece := range payload.State.Board.Pieces {
			assert.Equal(t, testImageData, piece.ImageData)
		}
	})

	t.Run("piece:drop without a piece id is rejected", func(t *testing.T) {
		_, url := newTestServer(t)

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"piece:drop","payload":{"x":1,"y":1}}`)

		assert.Equal(t, "piece_id is required", payload.Error)
	})

	t.Run("Simple actions map to their commands", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		for _, cmd := range []game.Command{game.Start{}, game.Back{}, game.ChangeImage{}, game.Reset{}} {
			mockUseCase.EXPECT().
				Dispatch(mock.Anything, testPlayerID, cmd).
				Return(&state, nil, nil).
				Once()
		}
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.SwitchCategory{Category: entity.CategoryClimate}).
			Return(&state, nil, nil).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))

		for _, raw := range []string{
			`{"action":"menu:start"}`,
			`{"action":"nav:back"}`,
			`{"action":"puzzle:change-image"}`,
			`{"action":"puzzle:reset"}`,
			`{"action":"puzzle:switch-category","payload":{"category":"climate"}}`,
		} {
			_, payload := send(t, conn, raw)
			assert.Empty(t, payload.Error, raw)
		}
	})

	t.Run("Rejected commands return the state and the reason", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		state := game.NewState()
		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.Reset{}).
			Return(&state, nil, fmt.Errorf("failed to apply: %w", apperror.ErrInvalidCommand)).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"puzzle:reset"}`)

		assert.Equal(t, apperror.ErrInvalidCommand.Error(), payload.Error)
		require.NotNil(t, payload.State)
		assert.Equal(t, game.ScreenMenu, payload.State.Screen)
	})

	t.Run("Internal errors are hidden", func(t *testing.T) {
		mockUseCase, url := newTestServer(t)

		mockUseCase.EXPECT().
			Dispatch(mock.Anything, testPlayerID, game.Start{}).
			Return(nil, nil, errRedisDown).
			Once()

		conn, _ := dial(t, url, withSession(testPlayerID))
		_, payload := send(t, conn, `{"action":"menu:start"}`)

		assert.Equal(t, internalErrorMessage, payload.Error)
		assert.Nil(t, payload.State)
	})

	t.Run("Unknown actions and malformed messages keep the connection open", func(t *testing.T) {
		_, url := newTestServer(t)

		conn, _ := dial(t, url, withSession(testPlayerID))

		message, payload := send(t, conn, `{"action":"game:turn"}`)
		assert.Equal(t, "game:turn", message.Action)
		assert.Equal(t, "unknown action", payload.Error)

		_, payload = send(t, conn, `not json`)
		assert.Equal(t, "malformed message", payload.Error)
	})
}
