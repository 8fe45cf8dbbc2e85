package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/exp/maps"
)

// Conn is the part of a websocket connection a room writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client serializes writes to one connection. Broadcasts and the connection's
// own handler both write through it.
type Client struct {
	conn Conn
	mu   sync.Mutex
}

func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*Client // playerID -> client
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*Client),
	}
}

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// Room hosts one engine instance together with its seats and observers.
type Room struct {
	ID        string
	Name      string
	CreatedAt time.Time

	game        *model.Game
	mu          sync.Mutex
	players     Players
	connections *GameConnections

	// cmdMu makes seat checks and engine commits one step. sendMu is taken
	// before cmdMu is released so broadcasts leave in commit order.
	cmdMu  sync.Mutex
	sendMu sync.Mutex
}

// RoomState is what clients receive for a game.
type RoomState struct {
	GameID string `json:"gameId"`
	Name   string `json:"name"`
	model.GameState
	Players Players `json:"players"`
}

// MoveRequest carries a move in algebraic squares, e.g. {"from":"e2","to":"e4"}.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (m MoveRequest) positions() (model.Position, model.Position, error) {
	from, err := model.ParseSquare(m.From)
	if err != nil {
		return model.Position{}, model.Position{}, fmt.Errorf("%w: %v", ErrInvalidSquare, err)
	}
	to, err := model.ParseSquare(m.To)
	if err != nil {
		return model.Position{}, model.Position{}, fmt.Errorf("%w: %v", ErrInvalidSquare, err)
	}
	return from, to, nil
}

func NewRoom(id, name string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		CreatedAt:   time.Now(),
		game:        model.NewGame(),
		connections: NewGameConnections(),
	}
}

func (r *Room) Game() *model.Game {
	return r.game
}

// AddPlayer seats playerID, white first. A player already seated keeps their colour.
func (r *Room) AddPlayer(playerID string) (model.Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if color, ok := r.seatOf(playerID); ok {
		return color, nil
	}
	if r.players.White.ID == "" {
		r.players.White = ClientPlayer{ID: playerID, Color: model.White}
		return model.White, nil
	}
	if r.players.Black.ID == "" {
		r.players.Black = ClientPlayer{ID: playerID, Color: model.Black}
		return model.Black, nil
	}
	return "", ErrGameFull
}

func (r *Room) SeatOf(playerID string) (model.Color, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seatOf(playerID)
}

func (r *Room) seatOf(playerID string) (model.Color, bool) {
	if playerID == "" {
		return "", false
	}
	switch playerID {
	case r.players.White.ID:
		return model.White, true
	case r.players.Black.ID:
		return model.Black, true
	}
	return "", false
}

func (r *Room) MakeMove(playerID string, move MoveRequest) error {
	from, to, err := move.positions()
	if err != nil {
		return err
	}
	return r.command(playerID, func(color model.Color) error {
		if color != r.game.CurrentPlayer() {
			return ErrNotYourTurn
		}
		if !r.game.MakeMove(from, to) {
			return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
		}
		log.Debugf("game %s: %s played %s%s, status %s", r.ID, color, from, to, r.game.Status())
		return nil
	})
}

func (r *Room) Undo(playerID string) error {
	return r.command(playerID, func(model.Color) error {
		if !r.game.UndoLastMove() {
			return ErrNothingToUndo
		}
		return nil
	})
}

func (r *Room) Reset(playerID string) error {
	return r.command(playerID, func(model.Color) error {
		r.game.Reset()
		return nil
	})
}

// command runs apply for a seated player with commands serialized, then
// broadcasts the resulting state.
func (r *Room) command(playerID string, apply func(color model.Color) error) error {
	r.cmdMu.Lock()
	color, ok := r.SeatOf(playerID)
	if !ok {
		r.cmdMu.Unlock()
		return ErrNotSeated
	}
	if err := apply(color); err != nil {
		r.cmdMu.Unlock()
		return err
	}
	r.broadcastLocked()
	return nil
}

func (r *Room) State() RoomState {
	r.mu.Lock()
	players := r.players
	r.mu.Unlock()

	return RoomState{
		GameID:    r.ID,
		Name:      r.Name,
		GameState: r.game.GetState(),
		Players:   players,
	}
}

// LegalMoves lists legal moves of the side to move, or of one piece when from
// is a square name.
func (r *Room) LegalMoves(from string) ([]model.SimpleMove, error) {
	if strings.TrimSpace(from) == "" {
		return r.game.ValidMoves(r.game.CurrentPlayer()), nil
	}
	pos, err := model.ParseSquare(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSquare, err)
	}
	return r.game.ValidMovesFrom(pos), nil
}

// RegisterConnection attaches an observer. Seated players and spectators are
// both allowed; a second connection for the same id is closed and turned away
// with ErrDuplicateConnection.
func (r *Room) RegisterConnection(playerID string, conn Conn) (*Client, error) {
	r.connections.mu.Lock()
	if _, exists := r.connections.connections[playerID]; exists {
		r.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil, ErrDuplicateConnection
	}
	client := NewClient(conn)
	r.connections.connections[playerID] = client
	r.connections.mu.Unlock()
	log.Infof("game %s: registered connection for player %s", r.ID, playerID)

	r.cmdMu.Lock()
	r.broadcastLocked()
	return client, nil
}

// UnregisterConnection detaches client. A newer connection registered under
// the same id is left alone.
func (r *Room) UnregisterConnection(playerID string, client *Client) {
	r.connections.mu.Lock()
	defer r.connections.mu.Unlock()

	if current, exists := r.connections.connections[playerID]; exists && current == client {
		log.Infof("game %s: unregistering connection for player %s", r.ID, playerID)
		delete(r.connections.connections, playerID)
	}
}

func (r *Room) ConnectionCount() int {
	r.connections.mu.Lock()
	defer r.connections.mu.Unlock()
	return len(r.connections.connections)
}

// broadcastLocked must be called with cmdMu held and releases it. The state is
// captured under cmdMu; the writes happen after it is released, outside the
// connection map lock, so a slow socket holds up neither commands nor joins.
func (r *Room) broadcastLocked() {
	state := r.State()
	r.sendMu.Lock()
	r.cmdMu.Unlock()
	defer r.sendMu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", r.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}

	r.connections.mu.Lock()
	activeConnections := make(map[string]*Client, len(r.connections.connections))
	maps.Copy(activeConnections, r.connections.connections)
	r.connections.mu.Unlock()

	failed := make(map[string]*Client)
	for playerID, client := range activeConnections {
		if err := client.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", r.ID, playerID, err)
			failed[playerID] = client
		}
	}
	if len(failed) == 0 {
		return
	}

	r.connections.mu.Lock()
	defer r.connections.mu.Unlock()
	for playerID, client := range failed {
		if r.connections.connections[playerID] == client {
			delete(r.connections.connections, playerID)
		}
	}
}
