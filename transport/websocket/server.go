package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/pkg"
)

const (
	sessionCookieName = "user_session"
	sessionTTL        = 24 * time.Hour

	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type puzzleUseCase interface {
	Connect(ctx context.Context, playerID string) (*entity.Player, *game.State, error)
	Dispatch(ctx context.Context, playerID string, cmd game.Command) (*game.State, []game.Event, error)
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger   *slog.Logger
	uPuzzle  puzzleUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

// client is one open connection. Only the connection's read loop writes to conn.
type client struct {
	conn     *websocket.Conn
	playerID string
}

func New(logger *slog.Logger, uPuzzle puzzleUseCase) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		uPuzzle: uPuzzle,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[game.ActionStart] = server.handleStart
	server.handlers[game.ActionChooseCategory] = server.handleChooseCategory
	server.handlers[game.ActionBack] = server.handleBack
	server.handlers[game.ActionChangeImage] = server.handleChangeImage
	server.handlers[game.ActionSwitchCategory] = server.handleSwitchCategory
	server.handlers[game.ActionReset] = server.handleReset
	server.handlers[game.ActionDrop] = server.handleDrop

	return server
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server. It returns nil once ctx is cancelled and the server has shut down.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	playerID, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "player_id", playerID)

	if err = that.handleMessages(ctx, &client{conn: conn, playerID: playerID}); err != nil {
		log.Info("WebSocket connection closed", "player_id", playerID, "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection or ctx closes.
func (that *Server) handleMessages(ctx context.Context, client *client) error {
	log := that.logger.With("method", "handleMessages")

	client.conn.SetReadLimit(maxMessageSize)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = client.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second),
			)
			_ = client.conn.Close()
		case <-done:
		}
	}()

	for {
		_, reqBody, err := client.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(client, "", "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(client, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookie returns the player id of the request and the header that sets a new cookie if
// the request had none.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	log := that.logger.With("method", "sessionCookie")

	cookie, err := req.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		log.Info("session cookie found", "cookie", cookie.Value)
		return cookie.Value, nil
	}

	cookie = &http.Cookie{
		Name:     sessionCookieName,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionTTL),
		Path:     "/ws",
		HttpOnly: true,
	}

	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value, http.Header{"Set-Cookie": {cookie.String()}}
}
