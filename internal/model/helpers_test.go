package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sq(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

var fenPieces = map[byte]PieceType{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

// stateFromFEN builds a snapshot from the placement and side-to-move fields
// of a FEN record. Castling and en passant fields are ignored.
func stateFromFEN(t *testing.T, fen string) State {
	t.Helper()
	fields := strings.Fields(fen)
	require.GreaterOrEqual(t, len(fields), 2, "fen %q", fen)

	var s State
	ranks := strings.Split(fields[0], "/")
	require.Len(t, ranks, 8, "fen %q", fen)
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			lower := ch | 0x20
			kind, ok := fenPieces[lower]
			require.True(t, ok, "bad piece %q in %q", ch, fen)
			c := Black
			if ch != lower {
				c = White
			}
			require.Less(t, col, 8, "rank %q overflows", rank)
			s.Board[row][col] = &Piece{Type: kind, Color: c}
			col++
		}
		require.Equal(t, 8, col, "rank %q", rank)
	}
	s.Turn = White
	if fields[1] == "b" {
		s.Turn = Black
	}
	s.Status = s.evaluateStatus()
	return s
}

func gameFromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g := NewGame()
	g.state = stateFromFEN(t, fen)
	return g
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		require.Len(t, m, 4, "move %q", m)
		require.True(t, g.MakeMove(sq(m[:2]), sq(m[2:])), "move %s rejected in %s", m, g.FEN())
	}
}

func moveSet(moves []SimpleMove) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}
