package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)

	// Register this connection with the game
	client, err := wsc.gameService.RegisterConnection(gameID, playerID, c)
	if errors.Is(err, service.ErrDuplicateConnection) {
		// Already closed by the room; the existing connection stays registered.
		log.Debugf("game %s: duplicate connection for player %s", gameID, playerID)
		return
	}
	if err != nil {
		log.Warnf("failed to register connection: %v", err)
		c.WriteJSON(ws.NewError(err))
		c.Close()
		return
	}

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error: %v", err)
			client.WriteJSON(ws.NewError(fmt.Errorf("malformed message: %w", err)))
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: %s rejected for %s: %v", gameID, msg.Type, playerID, err)
			client.WriteJSON(ws.NewError(err))
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, playerID, client)
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move service.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)
	case ws.MessageTypeUndo:
		return wsc.gameService.Undo(gameID, playerID)
	case ws.MessageTypeReset:
		return wsc.gameService.Reset(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
