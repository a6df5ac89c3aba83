package game

import (
	"time"

	"github.com/Mshel/ouroboros/internal/grid"
)

// Intent is a request from a client to the game loop.
type Intent interface {
	isIntent()
}

// StartIntent begins a new game. Zero fields fall back to the manager's
// settings. It is ignored while a game is running.
type StartIntent struct {
	GridWidth    int
	GridHeight   int
	TickInterval time.Duration
}

// StopIntent halts the loop and discards AI path state.
type StopIntent struct{}

// ReconfigureIntent stops the game and resizes the board. A StartIntent is
// needed to play again.
type ReconfigureIntent struct {
	GridWidth  int
	GridHeight int
}

// DirectionIntent is player input. It switches off any active AI.
type DirectionIntent struct {
	Dx, Dy int
}

type ToggleModeIntent struct {
	Mode ControlMode
}

func (StartIntent) isIntent()       {}
func (StopIntent) isIntent()        {}
func (ReconfigureIntent) isIntent() {}
func (DirectionIntent) isIntent()   {}
func (ToggleModeIntent) isIntent()  {}

// Updates published by the game loop. They are tea.Msg values so a
// bubbletea program can consume them directly.

// StateUpdateMsg is a snapshot taken after every tick. SnakeBody is a copy,
// head first.
type StateUpdateMsg struct {
	SnakeBody  []grid.Cell
	Food       grid.Cell
	Score      int
	Direction  grid.Direction
	GridWidth  int
	GridHeight int
	Status     Status
}

// AIStatusMsg reports the active mode and whether its strategy found a
// path. Source tells which fallback is steering when it did not.
type AIStatusMsg struct {
	ActiveMode ControlMode
	HasPath    bool
	Source     PathSource
}

type GameOverMsg struct {
	Score  int
	Won    bool
	Reason string
}

type ErrorMsg struct {
	Message string
}
