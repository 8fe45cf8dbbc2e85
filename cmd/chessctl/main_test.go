package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScholarsMate(t *testing.T) {
	color.NoColor = true
	game := model.NewGame()
	input := strings.Join([]string{
		"e2e4", "e7 e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7", "history", "quit",
	}, "\n")
	var out bytes.Buffer

	require.NoError(t, run(game, strings.NewReader(input), &out))
	assert.Equal(t, model.StatusCheckmate, game.Status())
	assert.Contains(t, out.String(), "checkmate, white wins")
	assert.Contains(t, out.String(), "4. Qxf7")
}

func TestRunCommands(t *testing.T) {
	color.NoColor = true
	game := model.NewGame()
	input := "moves\nmoves g1\ne2e5\nundo\nfen\nbogus\n"
	var out bytes.Buffer

	require.NoError(t, run(game, strings.NewReader(input), &out))
	text := out.String()
	assert.Contains(t, text, "20 moves")
	assert.Contains(t, text, "2 moves: g1f3 g1h3")
	assert.Contains(t, text, "illegal move e2e5")
	assert.Contains(t, text, "nothing to undo")
	assert.Contains(t, text, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	assert.Contains(t, text, "unknown command")
}
