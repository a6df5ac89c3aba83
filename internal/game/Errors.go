package game

import "errors"

var (
	// ErrInvalidMove is a path step that is not an orthogonal unit step from
	// the head.
	ErrInvalidMove = errors.New("invalid move")
	ErrNoPathFound = errors.New("no path found")

	// ErrBoardFull means there is no free cell left for food. The game
	// reports it as a win.
	ErrBoardFull = errors.New("board full")

	// ErrTrapped means the AI has no legal move left.
	ErrTrapped    = errors.New("snake trapped")
	ErrCollision  = errors.New("collision")
	ErrTickPanic  = errors.New("tick panicked")
	ErrNotRunning = errors.New("game not running")
)
