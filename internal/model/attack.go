package model

// isPositionUnderAttack reports whether any piece of byColor could move to
// position by geometry alone. King safety of the attacker is ignored, so the
// result is a pseudo-legal attack map.
func isPositionUnderAttack(board *Board, position Position, byColor Color) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pc := board[r][c]
			if pc == nil || pc.Color != byColor {
				continue
			}
			if pieceCanMove(board, pc, Position{Row: r, Col: c}, position) {
				return true
			}
		}
	}
	return false
}

// isKingInCheck is false when color has no king on the board.
func isKingInCheck(board *Board, color Color) bool {
	kingPos, ok := board.findKing(color)
	if !ok {
		return false
	}
	return isPositionUnderAttack(board, kingPos, color.Opposite())
}
