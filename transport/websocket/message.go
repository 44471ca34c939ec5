package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/game"
)

const actionConnect = "connect"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of a client command. Fields are read per action.
type Payload struct {
	Player   *entity.Player  `json:"player,omitempty"`
	Category entity.Category `json:"category,omitempty"`
	PieceID  *int            `json:"piece_id,omitempty"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	State  *game.State    `json:"state,omitempty"`
	Events []game.Event   `json:"events,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (that *Server) sendMessage(client *client, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = client.conn.WriteMessage(websocket.TextMessage, responseBytes); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(client *client, action, message string) error {
	return that.sendMessage(client, action, ResponsePayload{Error: message})
}

func decodePayload(message *Message) (Payload, error) {
	var payload Payload
	if len(message.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
