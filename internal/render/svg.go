// Package render draws boards for clients that cannot render pieces themselves.
package render

import (
	"bytes"
	"fmt"

	"github.com/ajstarks/svgo"
	"github.com/benbeisheim/chess-backend/internal/model"
)

const (
	SquareSize = 60
	boardSize  = SquareSize * 8
	margin     = 20

	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a;fill-opacity:0.8"
	pieceStyle  = "font-size:44px;text-anchor:middle;dominant-baseline:central;font-family:serif"
	labelStyle  = "font-size:12px;text-anchor:middle;fill:#555;font-family:sans-serif"
)

var glyphs = map[model.Color]map[model.PieceType]string{
	model.White: {
		model.King:   "♔",
		model.Queen:  "♕",
		model.Rook:   "♖",
		model.Bishop: "♗",
		model.Knight: "♘",
		model.Pawn:   "♙",
	},
	model.Black: {
		model.King:   "♚",
		model.Queen:  "♛",
		model.Rook:   "♜",
		model.Bishop: "♝",
		model.Knight: "♞",
		model.Pawn:   "♟",
	},
}

// Glyph returns the unicode chess symbol for a piece.
func Glyph(p model.Piece) string {
	return glyphs[p.Color][p.Type]
}

// BoardSVG renders board with white at the bottom. lastMove may be nil.
func BoardSVG(board model.Board, lastMove *model.SimpleMove) ([]byte, error) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)
	canvas.Rect(0, 0, boardSize+2*margin, boardSize+2*margin, "fill:#ffffff")

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := margin + col*SquareSize
			y := margin + row*SquareSize
			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			canvas.Rect(x, y, SquareSize, SquareSize, style)

			pos := model.Position{Row: row, Col: col}
			if lastMove != nil && (lastMove.From == pos || lastMove.To == pos) {
				canvas.Rect(x, y, SquareSize, SquareSize, highlight)
			}
			if pc := board[row][col]; pc != nil {
				glyph := Glyph(*pc)
				if glyph == "" {
					return nil, fmt.Errorf("render: unknown piece %s %s on %s", pc.Color, pc.Type, pos)
				}
				canvas.Text(x+SquareSize/2, y+SquareSize/2, glyph, pieceStyle)
			}
		}
	}

	for i := 0; i < 8; i++ {
		center := margin + i*SquareSize + SquareSize/2
		canvas.Text(center, boardSize+margin+margin/2, string(rune('a'+i)), labelStyle)
		canvas.Text(margin/2, center, fmt.Sprintf("%d", 8-i), labelStyle)
	}

	canvas.End()
	return buf.Bytes(), nil
}
