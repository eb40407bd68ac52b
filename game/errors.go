package game

import "errors"

var (
	// ErrConfiguration reports invalid constructor or LoadGame arguments.
	ErrConfiguration = errors.New("invalid game configuration")
	// ErrOutOfBounds reports a position outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)
