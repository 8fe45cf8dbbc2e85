package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorPayload is sent back to the connection whose message failed.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewError builds an error message with an ErrorPayload body.
func NewError(err error) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: payload}
}
