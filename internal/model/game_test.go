package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.Equal(t, White, g.CurrentPlayer())
	assert.Equal(t, StatusPlaying, g.Status())
	assert.Empty(t, g.MoveHistory())
	assert.Equal(t, InitialBoard(), g.Board())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", g.FEN())
}

func TestOpeningPawnPush(t *testing.T) {
	g := NewGame()
	require.True(t, g.MakeMove(Position{Row: 6, Col: 4}, Position{Row: 4, Col: 4}))

	assert.Equal(t, Black, g.CurrentPlayer())
	assert.Equal(t, StatusPlaying, g.Status())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1", g.FEN())

	history := g.MoveHistory()
	require.Len(t, history, 1)
	assert.Equal(t, Move{
		From:     sq("e2"),
		To:       sq("e4"),
		Piece:    Piece{Type: Pawn, Color: White},
		Notation: "e4",
	}, history[0])

	moved := g.Board()[4][4]
	require.NotNil(t, moved)
	assert.True(t, moved.HasMoved)
}

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	g := NewGame()
	moves := g.ValidMoves(White)
	assert.Len(t, moves, 20)

	pawnMoves, knightMoves := 0, 0
	board := g.Board()
	for _, m := range moves {
		switch board[m.From.Row][m.From.Col].Type {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		}
	}
	assert.Equal(t, 16, pawnMoves)
	assert.Equal(t, 4, knightMoves)
	assert.Empty(t, g.ValidMoves(Black), "black is not to move")
}

func TestValidMovesFrom(t *testing.T) {
	g := NewGame()
	assert.Equal(t, map[string]bool{"g1f3": true, "g1h3": true}, moveSet(g.ValidMovesFrom(sq("g1"))))
	assert.Empty(t, g.ValidMovesFrom(sq("e4")))
	assert.Empty(t, g.ValidMovesFrom(Position{Row: -1, Col: 0}))
}

func TestMakeMoveRejectsWithoutChange(t *testing.T) {
	g := NewGame()
	before := g.GetState()

	assert.False(t, g.MakeMove(sq("e2"), sq("e5")))
	assert.False(t, g.MakeMove(sq("e7"), sq("e5")), "wrong side")
	assert.False(t, g.MakeMove(sq("e3"), sq("e4")), "empty square")
	assert.False(t, g.MakeMove(sq("e2"), Position{Row: 8, Col: 4}))

	assert.Equal(t, before, g.GetState())
}

func TestUndoRoundTrip(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 0 1",
		"4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1",
		"4k3/8/8/3p4/4P3/8/8/4K3 b - - 0 1",
	}
	for _, fen := range positions {
		g := gameFromFEN(t, fen)
		for _, m := range g.ValidMoves(g.CurrentPlayer()) {
			board, turn, status := g.Board(), g.CurrentPlayer(), g.Status()
			history := g.MoveHistory()

			require.True(t, g.MakeMove(m.From, m.To), "%s in %s", m, fen)
			require.True(t, g.UndoLastMove())

			assert.Equal(t, board, g.Board(), "%s in %s", m, fen)
			assert.Equal(t, turn, g.CurrentPlayer())
			assert.Equal(t, status, g.Status())
			assert.Equal(t, history, g.MoveHistory())
		}
	}
}

func TestUndoRestoresCapturedPiece(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4d5")

	history := g.MoveHistory()
	require.Len(t, history, 3)
	require.NotNil(t, history[2].Captured)
	assert.Equal(t, Piece{Type: Pawn, Color: Black, HasMoved: true}, *history[2].Captured)
	assert.Equal(t, "exd5", history[2].Notation)
	assert.Equal(t, []Piece{{Type: Pawn, Color: Black, HasMoved: true}}, g.CapturedPieces().White)
	assert.Empty(t, g.CapturedPieces().Black)

	require.True(t, g.UndoLastMove())
	board := g.Board()
	require.NotNil(t, board[3][3])
	assert.Equal(t, Piece{Type: Pawn, Color: Black, HasMoved: true}, *board[3][3])
	require.NotNil(t, board[4][4])
	assert.Equal(t, Piece{Type: Pawn, Color: White, HasMoved: true}, *board[4][4])
	assert.Equal(t, White, g.CurrentPlayer())
	assert.Empty(t, g.CapturedPieces().White)
}

func TestUndoRestoresPreMovePiece(t *testing.T) {
	g := NewGame()
	play(t, g, "g1f3")
	require.True(t, g.UndoLastMove())

	knight := g.Board()[7][6]
	require.NotNil(t, knight)
	assert.False(t, knight.HasMoved)
	assert.Nil(t, g.Board()[5][5])
}

func TestUndoEmptyHistory(t *testing.T) {
	g := NewGame()
	assert.False(t, g.UndoLastMove())
	assert.Equal(t, White, g.CurrentPlayer())

	play(t, g, "e2e4")
	assert.True(t, g.UndoLastMove())
	assert.False(t, g.UndoLastMove())
}

func TestUndoAfterMateRestoresStatus(t *testing.T) {
	g := NewGame()
	play(t, g, scholarsMate...)
	require.True(t, g.UndoLastMove())
	assert.Equal(t, White, g.CurrentPlayer())
	assert.Equal(t, StatusPlaying, g.Status())
	assert.Len(t, g.MoveHistory(), 6)
}

func TestReset(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3")
	g.Reset()

	assert.Equal(t, InitialBoard(), g.Board())
	assert.Equal(t, White, g.CurrentPlayer())
	assert.Equal(t, StatusPlaying, g.Status())
	assert.Empty(t, g.MoveHistory())
	assert.False(t, g.UndoLastMove())
}

func TestSnapshotsAreDefensiveCopies(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4d5")

	board := g.Board()
	board[7][4] = nil
	board[0][4].Color = White

	history := g.MoveHistory()
	history[2].Captured.Type = Queen
	history[0].Piece.Type = Queen

	snap := g.Snapshot()
	snap.Board[7][3].Type = King

	state := g.GetState()
	state.Board[6][0] = nil

	fresh := g.Board()
	require.NotNil(t, fresh[7][4])
	assert.Equal(t, King, fresh[7][4].Type)
	assert.Equal(t, Black, fresh[0][4].Color)
	assert.Equal(t, Queen, fresh[7][3].Type)
	assert.NotNil(t, fresh[6][0])

	fresh2 := g.MoveHistory()
	require.Len(t, fresh2, 3)
	assert.Equal(t, Pawn, fresh2[2].Captured.Type)
	assert.Equal(t, Pawn, fresh2[0].Piece.Type)
}

func TestGetState(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5")

	state := g.GetState()
	assert.Equal(t, White, state.ToMove)
	assert.Equal(t, StatusPlaying, state.Status)
	assert.False(t, state.IsCheck)
	assert.Nil(t, state.Winner)
	require.NotNil(t, state.LastMove)
	assert.Equal(t, SimpleMove{From: sq("d7"), To: sq("d5")}, *state.LastMove)
	assert.Len(t, state.MoveHistory, 2)
	assert.Equal(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2", state.FEN)
}

func TestNotation(t *testing.T) {
	g := NewGame()
	play(t, g, "g1f3", "e7e5", "f3e5", "b8c6")
	var got []string
	for _, m := range g.MoveHistory() {
		got = append(got, m.Notation)
	}
	assert.Equal(t, []string{"Nf3", "e5", "Nxe5", "Nc6"}, got)
}
