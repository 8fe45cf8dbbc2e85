package service

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameExists    = errors.New("game already exists")
	ErrGameFull      = errors.New("game is full")
	ErrNotSeated     = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidSquare = errors.New("invalid square")
	ErrNothingToUndo = errors.New("nothing to undo")

	ErrDuplicateConnection = errors.New("connection already exists")
)
