package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// pieceCanMove reports whether the geometry of the piece allows from -> to on
// the given board. It does not look at turn order, the colour of the piece on
// the destination or king safety.
func pieceCanMove(board *Board, piece *Piece, from, to Position) bool {
	if from == to {
		return false
	}
	switch piece.Type {
	case Pawn:
		return pawnCanMove(board, piece.Color, from, to)
	case Knight:
		return knightCanMove(from, to)
	case Bishop:
		return bishopCanMove(board, from, to)
	case Rook:
		return rookCanMove(board, from, to)
	case Queen:
		return queenCanMove(board, from, to)
	case King:
		return kingCanMove(from, to)
	default:
		return false
	}
}

func pawnCanMove(board *Board, color Color, from, to Position) bool {
	dir, homeRow := -1, 6
	if color == Black {
		dir, homeRow = 1, 1
	}
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)

	if colDiff == 0 {
		if rowDiff == dir {
			return board.at(to) == nil
		}
		// The square passed over has to be empty as well as the destination.
		if from.Row == homeRow && rowDiff == 2*dir {
			between := Position{Row: from.Row + dir, Col: from.Col}
			return board.at(between) == nil && board.at(to) == nil
		}
		return false
	}
	return colDiff == 1 && rowDiff == dir && board.at(to) != nil
}

func knightCanMove(from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

func bishopCanMove(board *Board, from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if rowDiff != colDiff || rowDiff == 0 {
		return false
	}
	return isPathClear(board, from, to)
}

func rookCanMove(board *Board, from, to Position) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return isPathClear(board, from, to)
}

func queenCanMove(board *Board, from, to Position) bool {
	return rookCanMove(board, from, to) || bishopCanMove(board, from, to)
}

func kingCanMove(from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return rowDiff <= 1 && colDiff <= 1 && rowDiff+colDiff > 0
}

// isPathClear checks the squares strictly between from and to along a rank,
// file or diagonal. Callers guarantee the two squares are aligned.
func isPathClear(board *Board, from, to Position) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	cur := Position{Row: from.Row + rowDir, Col: from.Col + colDir}
	for cur != to {
		if board.at(cur) != nil {
			return false
		}
		cur = Position{Row: cur.Row + rowDir, Col: cur.Col + colDir}
	}
	return true
}
