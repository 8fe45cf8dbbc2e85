package model

import "sync"

// Game is the rules authority for a single game. Commands are serialized and
// either apply completely or leave the game untouched; queries hand out
// copies so callers can never reach the live board.
type Game struct {
	mu      sync.RWMutex
	state   State
	history []Move
	// previous[i] is the snapshot the game was in before history[i] was played.
	previous []State
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// GameState is a read-only view of a game, safe to serialize or keep.
type GameState struct {
	Board          Board          `json:"board"`
	ToMove         Color          `json:"toMove"`
	Status         GameStatus     `json:"status"`
	IsCheck        bool           `json:"isCheck"`
	Winner         *Color         `json:"winner"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *SimpleMove    `json:"lastMove"`
	FEN            string         `json:"fen"`
}

func NewGame() *Game {
	return &Game{
		state:    newState(),
		history:  make([]Move, 0),
		previous: make([]State, 0),
	}
}

func (g *Game) Board() Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Board.Clone()
}

func (g *Game) CurrentPlayer() Color {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Turn
}

func (g *Game) Status() GameStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Status
}

func (g *Game) MoveHistory() []Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.moveHistory()
}

func (g *Game) moveHistory() []Move {
	out := make([]Move, len(g.history))
	for i, m := range g.history {
		out[i] = m.clone()
	}
	return out
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.clone()
}

func (g *Game) IsValidMove(from, to Position) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.IsValidMove(from, to)
}

// MakeMove re-validates and commits from -> to. It returns false and changes
// nothing when the move is illegal.
func (g *Game) MakeMove(from, to Position) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, move, ok := g.state.Apply(from, to)
	if !ok {
		return false
	}
	g.previous = append(g.previous, g.state)
	g.history = append(g.history, move)
	g.state = next
	return true
}

// UndoLastMove reverts the most recent ply. It returns false on an empty history.
func (g *Game) UndoLastMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.history)
	if n == 0 {
		return false
	}
	g.state = g.previous[n-1]
	g.previous = g.previous[:n-1]
	g.history = g.history[:n-1]
	return true
}

func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = newState()
	g.history = make([]Move, 0)
	g.previous = make([]State, 0)
}

// ValidMoves lists every legal move for color. It is empty unless color is
// the side to move.
func (g *Game) ValidMoves(color Color) []SimpleMove {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if color != g.state.Turn {
		return []SimpleMove{}
	}
	return g.state.LegalMoves()
}

func (g *Game) ValidMovesFrom(from Position) []SimpleMove {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.LegalMovesFrom(from)
}

func (g *Game) IsInCheck(color Color) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return isKingInCheck(&g.state.Board, color)
}

func (g *Game) IsCheckmate(color Color) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return isKingInCheck(&g.state.Board, color) && !g.hasMovesFor(color)
}

func (g *Game) IsStalemate(color Color) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return !isKingInCheck(&g.state.Board, color) && !g.hasMovesFor(color)
}

func (g *Game) hasMovesFor(color Color) bool {
	return color == g.state.Turn && g.state.hasLegalMove()
}

func (g *Game) Winner() (Color, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Winner()
}

func (g *Game) CapturedPieces() CapturedPieces {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.capturedPieces()
}

// capturedPieces groups captures by the side that made them.
func (g *Game) capturedPieces() CapturedPieces {
	captured := CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
	for _, m := range g.history {
		if m.Captured == nil {
			continue
		}
		switch m.Piece.Color {
		case White:
			captured.White = append(captured.White, *m.Captured)
		case Black:
			captured.Black = append(captured.Black, *m.Captured)
		}
	}
	return captured
}

func (g *Game) FEN() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.fen(len(g.history))
}

// GetState collects everything a client needs to render the game.
func (g *Game) GetState() GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	gs := GameState{
		Board:          g.state.Board.Clone(),
		ToMove:         g.state.Turn,
		Status:         g.state.Status,
		IsCheck:        g.state.InCheck(),
		MoveHistory:    g.moveHistory(),
		CapturedPieces: g.capturedPieces(),
		FEN:            g.state.fen(len(g.history)),
	}
	if winner, ok := g.state.Winner(); ok {
		gs.Winner = &winner
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		gs.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	return gs
}
