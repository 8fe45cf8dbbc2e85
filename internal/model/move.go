package model

import "fmt"

// Move is the historical record of one committed ply. Piece and Captured are
// snapshots taken before the move was applied.
type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured *Piece   `json:"captured,omitempty"`
	Notation string   `json:"notation"`

	// Never set: castling, en passant and promotion are not played.
	IsCastling  bool `json:"isCastling"`
	IsEnPassant bool `json:"isEnPassant"`
	IsPromotion bool `json:"isPromotion"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m SimpleMove) String() string {
	return m.From.String() + m.To.String()
}

func (m Move) clone() Move {
	if m.Captured != nil {
		captured := *m.Captured
		m.Captured = &captured
	}
	return m
}

func getNotation(piece Piece, from, to Position, captured *Piece) string {
	pieceNotationPrefix := piece.Type.getPieceNotation()
	pieceNotationCapture := ""
	if captured != nil {
		pieceNotationCapture = "x"
	}
	pawnFileSpecifier := ""
	if piece.Type == Pawn && from.Col != to.Col {
		pawnFileSpecifier = from.getFileNotation()
	}
	return fmt.Sprintf("%s%s%s%s", pieceNotationPrefix, pawnFileSpecifier, pieceNotationCapture, to.String())
}
