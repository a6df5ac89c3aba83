package game

import (
	"github.com/Mshel/ouroboros/internal/grid"
	"github.com/Mshel/ouroboros/internal/pathfinding"
)

// Strategy computes the path an AI control mode wants to follow toward the
// food. An empty path means the strategy found nothing.
type Strategy interface {
	FindPath(head, food grid.Cell, body []grid.Cell, width, height int) pathfinding.Path
}

// AStarStrategy goes straight for the food.
type AStarStrategy struct {
	Find pathfinding.Finder
}

func (s AStarStrategy) FindPath(head, food grid.Cell, body []grid.Cell, width, height int) pathfinding.Path {
	find := s.Find
	if find == nil {
		find = pathfinding.FindPath
	}
	return find(head, food, body, width, height)
}

// LongestPathStrategy circles toward the tail while there is room.
type LongestPathStrategy struct {
	pathfinding.LongestPath
}

func (s LongestPathStrategy) FindPath(head, food grid.Cell, body []grid.Cell, width, height int) pathfinding.Path {
	return s.FindLongestPath(head, food, body, width, height)
}

// PathSource records which step of the fallback chain produced the cached
// path.
type PathSource int

const (
	NoPath PathSource = iota
	StrategyPath
	TailPath
	SurvivalPath
)

func (p PathSource) String() string {
	switch p {
	case StrategyPath:
		return "strategy"
	case TailPath:
		return "tail"
	case SurvivalPath:
		return "survival"
	default:
		return "none"
	}
}

// strategyFor returns the strategy of an AI mode, or nil for player control.
func (gm *GameManager) strategyFor(mode ControlMode) Strategy {
	switch mode {
	case AStarAI:
		return AStarStrategy{Find: gm.settings.Finder}
	case LongestPathAI:
		return LongestPathStrategy{pathfinding.NewLongestPath(gm.settings.Tunables, gm.settings.Finder)}
	default:
		return nil
	}
}
