package game

import "fmt"

// ControlMode says who steers the snake. Exactly one mode is active.
type ControlMode int

const (
	PlayerControl ControlMode = iota
	AStarAI
	LongestPathAI
)

func (m ControlMode) String() string {
	switch m {
	case PlayerControl:
		return "none"
	case AStarAI:
		return "astar"
	case LongestPathAI:
		return "longestPath"
	default:
		return fmt.Sprintf("ControlMode(%d)", int(m))
	}
}

func (m ControlMode) IsAI() bool {
	return m == AStarAI || m == LongestPathAI
}

// ParseControlMode accepts the wire names astar, longestPath and none.
func ParseControlMode(name string) (ControlMode, error) {
	switch name {
	case "astar":
		return AStarAI, nil
	case "longestPath":
		return LongestPathAI, nil
	case "none", "player", "":
		return PlayerControl, nil
	default:
		return PlayerControl, fmt.Errorf("unknown control mode %q", name)
	}
}

// Status is the game lifecycle state.
type Status int

const (
	NotStarted Status = iota
	Running
	GameOver
	Win
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) Finished() bool {
	return s == GameOver || s == Win
}
