package render

import (
	"strings"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSVG(t *testing.T) {
	out, err := BoardSVG(model.InitialBoard(), nil)
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, "</svg>")
	assert.Equal(t, 8, strings.Count(doc, "♙"))
	assert.Equal(t, 8, strings.Count(doc, "♟"))
	assert.Equal(t, 1, strings.Count(doc, "♔"))
	assert.NotContains(t, doc, "cdd26a")
}

func TestBoardSVGHighlightsLastMove(t *testing.T) {
	g := model.NewGame()
	require.True(t, g.MakeMove(model.Position{Row: 6, Col: 4}, model.Position{Row: 4, Col: 4}))
	state := g.GetState()

	out, err := BoardSVG(state.Board, state.LastMove)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), "cdd26a"))
}

func TestBoardSVGRejectsUnknownPiece(t *testing.T) {
	var board model.Board
	board[0][0] = &model.Piece{Type: "archbishop", Color: model.White}
	_, err := BoardSVG(board, nil)
	assert.Error(t, err)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "♞", Glyph(model.Piece{Type: model.Knight, Color: model.Black}))
	assert.Equal(t, "♕", Glyph(model.Piece{Type: model.Queen, Color: model.White}))
}
