package model

type GameStatus string

const (
	StatusPlaying   GameStatus = "playing"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
)

// IsTerminal reports whether no further moves exist for the side to move.
func (s GameStatus) IsTerminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// State is an immutable snapshot of a game. Transitions return a new State and
// never write to the receiver's board.
type State struct {
	Board  Board      `json:"board"`
	Turn   Color      `json:"turn"`
	Status GameStatus `json:"status"`
}

func newState() State {
	return State{
		Board:  InitialBoard(),
		Turn:   White,
		Status: StatusPlaying,
	}
}

// IsValidMove checks a candidate move for the side to move.
func (s State) IsValidMove(from, to Position) bool {
	if !from.inBounds() {
		return false
	}
	piece := s.Board.at(from)
	if piece == nil || piece.Color != s.Turn {
		return false
	}
	if !to.inBounds() {
		return false
	}
	if from == to {
		return false
	}
	if target := s.Board.at(to); target != nil && target.Color == piece.Color {
		return false
	}
	if !pieceCanMove(&s.Board, piece, from, to) {
		return false
	}
	return !s.wouldBeInCheck(from, to)
}

// wouldBeInCheck plays the move on a copy of the grid. s is a value receiver,
// so the caller's board is untouched whatever the outcome.
func (s State) wouldBeInCheck(from, to Position) bool {
	scratch := s.Board
	scratch[to.Row][to.Col] = scratch[from.Row][from.Col]
	scratch[from.Row][from.Col] = nil
	return isKingInCheck(&scratch, s.Turn)
}

// Apply validates and plays from -> to. On failure the returned State is the
// receiver and ok is false.
func (s State) Apply(from, to Position) (next State, move Move, ok bool) {
	if !s.IsValidMove(from, to) {
		return s, Move{}, false
	}
	piece := *s.Board.at(from)
	var captured *Piece
	if target := s.Board.at(to); target != nil {
		cp := *target
		captured = &cp
	}
	move = Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: captured,
		Notation: getNotation(piece, from, to, captured),
	}

	next = State{Board: s.Board, Turn: s.Turn.Opposite()}
	moved := piece
	moved.HasMoved = true
	next.Board[to.Row][to.Col] = &moved
	next.Board[from.Row][from.Col] = nil
	next.Status = next.evaluateStatus()
	return next, move, true
}

// LegalMoves enumerates every move IsValidMove accepts for the side to move.
func (s State) LegalMoves() []SimpleMove {
	moves := []SimpleMove{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pc := s.Board[r][c]
			if pc == nil || pc.Color != s.Turn {
				continue
			}
			moves = append(moves, s.LegalMovesFrom(Position{Row: r, Col: c})...)
		}
	}
	return moves
}

// LegalMovesFrom lists legal moves of the piece on from.
func (s State) LegalMovesFrom(from Position) []SimpleMove {
	moves := []SimpleMove{}
	if !from.inBounds() {
		return moves
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			to := Position{Row: r, Col: c}
			if s.IsValidMove(from, to) {
				moves = append(moves, SimpleMove{From: from, To: to})
			}
		}
	}
	return moves
}

func (s State) hasLegalMove() bool {
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			pc := s.Board[fr][fc]
			if pc == nil || pc.Color != s.Turn {
				continue
			}
			from := Position{Row: fr, Col: fc}
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					if s.IsValidMove(from, Position{Row: tr, Col: tc}) {
						return true
					}
				}
			}
		}
	}
	return false
}

// InCheck reports whether the side to move is in check.
func (s State) InCheck() bool {
	return isKingInCheck(&s.Board, s.Turn)
}

func (s State) evaluateStatus() GameStatus {
	inCheck := s.InCheck()
	hasMove := s.hasLegalMove()
	switch {
	case inCheck && !hasMove:
		return StatusCheckmate
	case !hasMove:
		return StatusStalemate
	case inCheck:
		return StatusCheck
	default:
		return StatusPlaying
	}
}

// Winner returns the side that delivered mate, or false when there is none.
func (s State) Winner() (Color, bool) {
	if s.Status != StatusCheckmate {
		return "", false
	}
	return s.Turn.Opposite(), true
}

func (s State) clone() State {
	s.Board = s.Board.Clone()
	return s
}
