package pathfinding

import (
	"math"

	"github.com/Mshel/ouroboros/internal/grid"
)

// ScanSearch is A* with the open set kept as a plain map and the minimum
// found by a linear scan on every iteration. It returns the same paths as
// Search at O(V^2) cost and is kept for small boards and as a cross-check.
func ScanSearch(g *grid.Grid, start, goal grid.Cell, opts Options) Path {
	if !preconditions(g, start, goal, opts) {
		return Path{}
	}

	heuristic := opts.heuristic(g)
	state := newSearchState(64)
	open := make(map[grid.Cell]struct{})

	startNode := state.node(start)
	startNode.h = heuristic(start, goal)
	startNode.f = startNode.h
	startNode.visited = true
	open[start] = struct{}{}

	closest := start

	for len(open) > 0 {
		current, found := lowestScore(open, state)
		if !found {
			break
		}
		if current == goal {
			return reconstructPath(state.cameFrom, start, goal)
		}

		delete(open, current)
		currentNode := state.node(current)
		currentNode.closed = true

		for _, neighbor := range g.Neighbors(current) {
			if g.IsWall(neighbor) {
				continue
			}
			neighborNode := state.node(neighbor)
			if neighborNode.closed {
				continue
			}

			gScore := currentNode.g + float64(g.Weight(neighbor))
			if neighborNode.visited && gScore >= neighborNode.g {
				continue
			}

			if !neighborNode.visited {
				neighborNode.h = heuristic(neighbor, goal)
			}
			neighborNode.visited = true
			neighborNode.g = gScore
			neighborNode.f = gScore + neighborNode.h
			state.cameFrom[neighbor] = current
			open[neighbor] = struct{}{}

			if opts.Closest {
				best := state.nodes[closest]
				if neighborNode.h < best.h || (neighborNode.h == best.h && neighborNode.g < best.g) {
					closest = neighbor
				}
			}
		}
	}

	if opts.Closest && closest != start {
		return reconstructPath(state.cameFrom, start, closest)
	}
	return Path{}
}

// lowestScore picks the open cell with the smallest f. Ties go to the lower h,
// then to the cell that sorts first by row and column so results do not depend
// on map iteration order.
func lowestScore(open map[grid.Cell]struct{}, state *searchState) (grid.Cell, bool) {
	var best grid.Cell
	bestF, bestH := math.Inf(1), math.Inf(1)
	found := false

	for c := range open {
		n := state.nodes[c]
		switch {
		case n.f < bestF,
			n.f == bestF && n.h < bestH,
			n.f == bestF && n.h == bestH && (c.Y < best.Y || (c.Y == best.Y && c.X < best.X)):
			best, bestF, bestH, found = c, n.f, n.h, true
		}
	}
	return best, found
}
