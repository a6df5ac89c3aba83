package game

import (
	"github.com/Mshel/ouroboros/internal/grid"
	"github.com/Mshel/ouroboros/internal/pathfinding"
)

// GameState is everything one game owns. Only the goroutine driving the
// GameManager touches it.
type GameState struct {
	Width  int
	Height int
	Snake  *Snake
	Food   grid.Cell
	Score  int
	Status Status
	Mode   ControlMode
	Ticks  int
	// EndReason describes why the game finished.
	EndReason string

	path       pathfinding.Path
	pathIndex  int
	pathSource PathSource
}

// NewGameState puts a one cell snake in the middle of the board.
func NewGameState(width, height int) *GameState {
	return &GameState{
		Width:  width,
		Height: height,
		Snake:  NewSnake(grid.Cell{X: width / 2, Y: height / 2}),
		Status: NotStarted,
		Mode:   PlayerControl,
	}
}

func (s *GameState) Capacity() int {
	return s.Width * s.Height
}

func (s *GameState) InBounds(c grid.Cell) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// HasPath reports whether the cached path still has steps left.
func (s *GameState) HasPath() bool {
	return s.pathIndex < len(s.path)
}

// NextPathStep peeks at the next cached step.
func (s *GameState) NextPathStep() (grid.Cell, bool) {
	if !s.HasPath() {
		return grid.Cell{}, false
	}
	return s.path[s.pathIndex], true
}

func (s *GameState) AdvancePath() {
	s.pathIndex++
}

func (s *GameState) SetPath(path pathfinding.Path, source PathSource) {
	s.path = path
	s.pathIndex = 0
	s.pathSource = source
	if len(path) == 0 {
		s.pathSource = NoPath
	}
}

func (s *GameState) ClearPath() {
	s.SetPath(nil, NoPath)
}

// RemainingPath returns a copy of the steps not yet taken.
func (s *GameState) RemainingPath() pathfinding.Path {
	if !s.HasPath() {
		return nil
	}
	rest := make(pathfinding.Path, len(s.path)-s.pathIndex)
	copy(rest, s.path[s.pathIndex:])
	return rest
}

func (s *GameState) PathSource() PathSource {
	return s.pathSource
}

// Snapshot copies the state into an update message.
func (s *GameState) Snapshot() StateUpdateMsg {
	return StateUpdateMsg{
		SnakeBody:  s.Snake.BodyCopy(),
		Food:       s.Food,
		Score:      s.Score,
		Direction:  s.Snake.CurrentDirection,
		GridWidth:  s.Width,
		GridHeight: s.Height,
		Status:     s.Status,
	}
}

// AIStatus describes the control mode for display.
func (s *GameState) AIStatus() AIStatusMsg {
	return AIStatusMsg{
		ActiveMode: s.Mode,
		HasPath:    s.Mode.IsAI() && s.HasPath() && s.pathSource == StrategyPath,
		Source:     s.pathSource,
	}
}
