package errors

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoMoves          = errors.New("no legal moves left")
	ErrCreateGameFailed = errors.New("create game failed")
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInternal         = errors.New("internal error")
)
