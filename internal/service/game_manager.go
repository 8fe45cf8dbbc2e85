package service

import (
	"sort"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// GameManager owns every hosted room. Each room has its own engine; nothing
// is shared between games.
type GameManager struct {
	games map[string]*Room
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Room),
	}
}

func (gm *GameManager) CreateGame(gameID, name string) (*Room, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	room := NewRoom(gameID, name)
	gm.games[gameID] = room
	log.Infof("created game %s (%s)", gameID, name)
	return room, nil
}

func (gm *GameManager) GetGame(gameID string) (*Room, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	room, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return room, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	return nil
}

// ListGames returns rooms oldest first.
func (gm *GameManager) ListGames() []*Room {
	gm.mu.RLock()
	rooms := make([]*Room, 0, len(gm.games))
	for _, room := range gm.games {
		rooms = append(rooms, room)
	}
	gm.mu.RUnlock()

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})
	return rooms
}
