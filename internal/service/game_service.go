package service

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/render"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

type GameSummary struct {
	GameID   string           `json:"gameId"`
	Name     string           `json:"name"`
	Status   model.GameStatus `json:"status"`
	ToMove   model.Color      `json:"toMove"`
	Plies    int              `json:"plies"`
	Finished bool             `json:"finished"`
}

// CreateGame opens a new room under a random id and a readable name.
func (gs *GameService) CreateGame() (string, string, error) {
	gameID := uuid.New().String()
	name := petname.Generate(2, "-")

	if _, err := gs.gameManager.CreateGame(gameID, name); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, name, nil
}

func (gs *GameService) ListGames() []GameSummary {
	rooms := gs.gameManager.ListGames()
	out := make([]GameSummary, 0, len(rooms))
	for _, room := range rooms {
		status := room.game.Status()
		out = append(out, GameSummary{
			GameID:   room.ID,
			Name:     room.Name,
			Status:   status,
			ToMove:   room.game.CurrentPlayer(),
			Plies:    len(room.game.MoveHistory()),
			Finished: status.IsTerminal(),
		})
	}
	return out
}

func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return room.AddPlayer(playerID)
}

func (gs *GameService) GetGameState(gameID string) (RoomState, error) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return RoomState{}, err
	}
	return room.State(), nil
}

func (gs *GameService) LegalMoves(gameID string, from string) ([]model.SimpleMove, error) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return room.LegalMoves(from)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move MoveRequest) error {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return room.MakeMove(playerID, move)
}

func (gs *GameService) Undo(gameID string, playerID string) error {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return room.Undo(playerID)
}

func (gs *GameService) Reset(gameID string, playerID string) error {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return room.Reset(playerID)
}

// BoardSVG renders the current board, highlighting the last move.
func (gs *GameService) BoardSVG(gameID string) ([]byte, error) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	state := room.game.GetState()
	return render.BoardSVG(state.Board, state.LastMove)
}

// RegisterConnection attaches conn to a game. Callers must write to conn only
// through the returned Client from then on.
func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) (*Client, error) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return room.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, client *Client) {
	room, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	room.UnregisterConnection(playerID, client)
}
