package model

import (
	"fmt"
	"strings"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Position addresses a square. Row 0 is black's back rank, Col 0 is the a-file.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.inBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.Col+'a', 8-p.Row)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.Col+'a')
}

// ParseSquare converts algebraic square text such as "e2" into a Position.
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}

// Board is an 8x8 grid indexed [row][col]; nil means the square is empty.
// Assigning a Board copies the grid but shares the pieces, use Clone to hand
// a board to code outside this package.
type Board [8][8]*Piece

func (b *Board) at(p Position) *Piece {
	return b[p.Row][p.Col]
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	var out Board
	for r := range b {
		for c, pc := range b[r] {
			if pc != nil {
				cp := *pc
				out[r][c] = &cp
			}
		}
	}
	return out
}

func (b *Board) findKing(color Color) (Position, bool) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if pc := b[r][c]; pc != nil && pc.Type == King && pc.Color == color {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var board Board
	for col, kind := range backRank {
		board[0][col] = &Piece{Type: kind, Color: Black}
		board[1][col] = &Piece{Type: Pawn, Color: Black}
		board[6][col] = &Piece{Type: Pawn, Color: White}
		board[7][col] = &Piece{Type: kind, Color: White}
	}
	return board
}
