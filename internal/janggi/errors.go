package janggi

import "errors"

// Reasons a move request is rejected. Game.MakeMove folds all of them into false.
var (
	ErrOffBoard    = errors.New("coordinate off board")
	ErrNoPiece     = errors.New("no piece on source")
	ErrNotYourTurn = errors.New("piece belongs to the other team")
	ErrGameOver    = errors.New("game already decided")
	ErrPassInCheck = errors.New("cannot pass while in check")
	ErrOwnPiece    = errors.New("destination holds own piece")
	ErrUnreachable = errors.New("piece cannot move there")
	ErrSelfCheck   = errors.New("move leaves own general in check")
)

var (
	ErrInvalidCoord    = errors.New("invalid coordinate")
	ErrInvalidPosition = errors.New("invalid position")
)
