package model

import (
	"strconv"
	"strings"
)

var fenLetters = map[PieceType]byte{
	King:   'k',
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
	Pawn:   'p',
}

// fen renders the snapshot as a FEN record. Castling and en passant fields are
// always "-" since neither rule is played, and the halfmove clock is not kept.
func (s State) fen(plies int) string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			pc := s.Board[r][c]
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := fenLetters[pc.Type]
			if pc.Color == White {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	turn := "w"
	if s.Turn == Black {
		turn = "b"
	}
	sb.WriteString(" " + turn + " - - 0 " + strconv.Itoa(plies/2+1))
	return sb.String()
}
