package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
)

const internalErrorMessage = "internal server error"

// clientErrors are reported to the player verbatim. Anything else is logged and hidden.
var clientErrors = []error{
	apperror.ErrInvalidCommand,
	apperror.ErrUnknownCommand,
	apperror.ErrUnknownCategory,
	apperror.ErrPieceNotFound,
	apperror.ErrInvalidDrop,
	apperror.ErrPuzzleNotLoaded,
	apperror.ErrPlayerIDRequired,
}

func (that *Server) handleConnect(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		_ = that.sendErrorResponse(client, msg.Action, "malformed payload")
		return err
	}

	playerID := client.playerID
	if payloadReq.Player != nil && payloadReq.Player.ID != "" {
		playerID = payloadReq.Player.ID
	}

	player, state, err := that.uPuzzle.Connect(ctx, playerID)
	if err != nil {
		log.Error("failed to connect player", "error", err)
		return that.sendErrorResponse(client, msg.Action, "failed to connect player")
	}

	client.playerID = player.ID

	if err = that.sendMessage(client, msg.Action, ResponsePayload{Player: player, State: state}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "player_id", player.ID, "screen", state.Screen)

	return nil
}

func (that *Server) handleStart(ctx context.Context, client *client, msg *Message) error {
	return that.dispatch(ctx, client, msg, game.Start{})
}

func (that *Server) handleBack(ctx context.Context, client *client, msg *Message) error {
	return that.dispatch(ctx, client, msg, game.Back{})
}

func (that *Server) handleChangeImage(ctx context.Context, client *client, msg *Message) error {
	return that.dispatch(ctx, client, msg, game.ChangeImage{})
}

func (that *Server) handleReset(ctx context.Context, client *client, msg *Message) error {
	return that.dispatch(ctx, client, msg, game.Reset{})
}

func (that *Server) handleChooseCategory(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		_ = that.sendErrorResponse(client, msg.Action, "malformed payload")
		return err
	}

	if payloadReq.Category == "" {
		return that.sendErrorResponse(client, msg.Action, "category is required")
	}

	return that.dispatch(ctx, client, msg, game.ChooseCategory{Category: payloadReq.Category})
}

func (that *Server) handleSwitchCategory(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		_ = that.sendErrorResponse(client, msg.Action, "malformed payload")
		return err
	}

	if payloadReq.Category == "" {
		return that.sendErrorResponse(client, msg.Action, "category is required")
	}

	return that.dispatch(ctx, client, msg, game.SwitchCategory{Category: payloadReq.Category})
}

func (that *Server) handleDrop(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		_ = that.sendErrorResponse(client, msg.Action, "malformed payload")
		return err
	}

	if payloadReq.PieceID == nil {
		return that.sendErrorResponse(client, msg.Action, "piece_id is required")
	}

	return that.dispatch(ctx, client, msg, game.Drop{
		PieceID: *payloadReq.PieceID,
		X:       payloadReq.X,
		Y:       payloadReq.Y,
	})
}

// dispatch runs cmd for the connected player and replies with the new state and its events.
func (that *Server) dispatch(ctx context.Context, client *client, msg *Message, cmd game.Command) error {
	log := that.logger.With("method", "dispatch", "action", msg.Action, "player_id", client.playerID)

	state, events, err := that.uPuzzle.Dispatch(ctx, client.playerID, cmd)
	if err != nil {
		log.Warn("command rejected", "error", err)

		return that.sendMessage(client, msg.Action, ResponsePayload{
			State: withImagesOnReady(state, nil),
			Error: errorMessage(err),
		})
	}

	if _, ok := game.Find(events, game.EventPuzzleCompleted); ok {
		log.Info("puzzle completed", "category", state.Category, "points", state.Session.Points)
	}

	return that.sendMessage(client, msg.Action, ResponsePayload{
		State:  withImagesOnReady(state, events),
		Events: events,
	})
}

// withImagesOnReady keeps piece images only in the response that announces a new board.
func withImagesOnReady(state *game.State, events []game.Event) *game.State {
	if state == nil {
		return nil
	}

	if _, ok := game.Find(events, game.EventPuzzleReady); ok {
		return state
	}

	stripped := state.WithoutImages()

	return &stripped
}

func errorMessage(err error) string {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return internalErrorMessage
}
