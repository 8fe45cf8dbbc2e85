// Command chessctl plays a local two-player game in the terminal.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/render"
	"github.com/fatih/color"
)

const help = `commands:
  e2e4 | e2 e4   play a move
  moves [sq]     list legal moves, optionally for one square
  undo           take back the last move
  reset          start over
  board          print the board
  fen            print the position as FEN
  history        print the move list
  quit           exit`

var (
	lightSq = color.New(color.BgHiWhite, color.FgBlack).SprintFunc()
	darkSq  = color.New(color.BgHiBlack, color.FgHiWhite).SprintFunc()
	info    = color.New(color.FgCyan).SprintfFunc()
	warn    = color.New(color.FgRed).SprintfFunc()
)

func main() {
	game := model.NewGame()
	if err := run(game, os.Stdin, color.Output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(game *model.Game, in io.Reader, out io.Writer) error {
	printBoard(out, game)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", game.CurrentPlayer())
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if quit := execute(game, fields, out); quit {
			return nil
		}
	}
}

// execute runs one command line and reports whether the session should end.
func execute(game *model.Game, fields []string, out io.Writer) bool {
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(out, help)
	case "board":
		printBoard(out, game)
	case "fen":
		fmt.Fprintln(out, game.FEN())
	case "undo":
		if !game.UndoLastMove() {
			fmt.Fprintln(out, warn("nothing to undo"))
			return false
		}
		printBoard(out, game)
	case "reset":
		game.Reset()
		printBoard(out, game)
	case "history":
		printHistory(out, game.MoveHistory())
	case "moves":
		var moves []model.SimpleMove
		if len(fields) > 1 {
			from, err := model.ParseSquare(fields[1])
			if err != nil {
				fmt.Fprintln(out, warn("%v", err))
				return false
			}
			moves = game.ValidMovesFrom(from)
		} else {
			moves = game.ValidMoves(game.CurrentPlayer())
		}
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintln(out, info("%d moves: %s", len(moves), strings.Join(names, " ")))
	default:
		from, to, err := parseMove(fields)
		if err != nil {
			fmt.Fprintln(out, warn("%v (type help)", err))
			return false
		}
		if !game.MakeMove(from, to) {
			fmt.Fprintln(out, warn("illegal move %s%s", from, to))
			return false
		}
		printBoard(out, game)
	}
	return false
}

func parseMove(fields []string) (model.Position, model.Position, error) {
	text := strings.Join(fields, "")
	if len(text) != 4 {
		return model.Position{}, model.Position{}, fmt.Errorf("unknown command %q", strings.Join(fields, " "))
	}
	from, err := model.ParseSquare(text[:2])
	if err != nil {
		return model.Position{}, model.Position{}, err
	}
	to, err := model.ParseSquare(text[2:])
	if err != nil {
		return model.Position{}, model.Position{}, err
	}
	return from, to, nil
}

func printBoard(out io.Writer, game *model.Game) {
	board := game.Board()
	for row := 0; row < 8; row++ {
		fmt.Fprintf(out, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			cell := "   "
			if pc := board[row][col]; pc != nil {
				cell = " " + render.Glyph(*pc) + " "
			}
			if (row+col)%2 == 0 {
				fmt.Fprint(out, lightSq(cell))
			} else {
				fmt.Fprint(out, darkSq(cell))
			}
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")

	switch status := game.Status(); status {
	case model.StatusCheckmate:
		winner, _ := game.Winner()
		fmt.Fprintln(out, info("checkmate, %s wins", winner))
	case model.StatusStalemate:
		fmt.Fprintln(out, info("stalemate, draw"))
	case model.StatusCheck:
		fmt.Fprintln(out, warn("%s is in check", game.CurrentPlayer()))
	}
}

func printHistory(out io.Writer, history []model.Move) {
	for i := 0; i < len(history); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, history[i].Notation)
		if i+1 < len(history) {
			line += " " + history[i+1].Notation
		}
		fmt.Fprintln(out, line)
	}
}
