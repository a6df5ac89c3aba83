package pathfinding

import (
	"fmt"

	"github.com/Mshel/ouroboros/internal/grid"
)

// Finder computes a shortest path for a snake whose body (head first) blocks
// the board. Every segment except the head is an obstacle, the goal cell is
// always enterable, moves are 4-directional and all cost 1.
type Finder func(start, goal grid.Cell, body []grid.Cell, width, height int) Path

// FindPath is the heap based Finder.
func FindPath(start, goal grid.Cell, body []grid.Cell, width, height int) Path {
	return Search(bodyGrid(goal, body, width, height), start, goal, Options{})
}

// FindPathScan is the linear scan Finder.
func FindPathScan(start, goal grid.Cell, body []grid.Cell, width, height int) Path {
	return ScanSearch(bodyGrid(goal, body, width, height), start, goal, Options{})
}

// FinderByName maps the configured search form to a Finder.
func FinderByName(name string) (Finder, error) {
	switch name {
	case "", "heap":
		return FindPath, nil
	case "scan":
		return FindPathScan, nil
	default:
		return nil, fmt.Errorf("unknown search form %q", name)
	}
}

func bodyGrid(goal grid.Cell, body []grid.Cell, width, height int) *grid.Grid {
	var obstacles []grid.Cell
	if len(body) > 1 {
		obstacles = body[1:]
	}
	return grid.FromObstacles(width, height, obstacles, goal)
}
