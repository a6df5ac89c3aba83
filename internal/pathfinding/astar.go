// Package pathfinding implements grid A* search and the snake-specific
// strategies built on top of it: longest-path tail chasing and the survival
// fallback used when nothing else is reachable.
package pathfinding

import (
	"math"

	"github.com/Mshel/ouroboros/internal/grid"
)

// Path is an ordered list of cells from (but excluding) the start to (and
// including) the goal. An empty path means no path was found.
type Path []grid.Cell

// Heuristic estimates the cost from a cell to the goal.
type Heuristic func(a, b grid.Cell) float64

// Manhattan is the default heuristic for 4-connected grids.
func Manhattan(a, b grid.Cell) float64 {
	return float64(grid.Manhattan(a, b))
}

// Diagonal is the octile heuristic for 8-connected grids.
func Diagonal(a, b grid.Cell) float64 {
	const d, d2 = 1.0, math.Sqrt2
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return d*(dx+dy) + (d2-2*d)*math.Min(dx, dy)
}

// Options tune a single search.
type Options struct {
	// Heuristic overrides the default (Manhattan, or Diagonal when the grid
	// allows diagonal moves).
	Heuristic Heuristic
	// Closest returns a path to the reachable cell nearest the goal when the
	// goal itself cannot be reached.
	Closest bool
}

func (o Options) heuristic(g *grid.Grid) Heuristic {
	if o.Heuristic != nil {
		return o.Heuristic
	}
	if g.Diagonal {
		return Diagonal
	}
	return Manhattan
}

// searchNode holds the per-search bookkeeping for one cell.
type searchNode struct {
	g, h, f float64
	visited bool
	closed  bool
}

// searchState is created per call, so nothing from a previous search leaks
// into the next one.
type searchState struct {
	nodes    map[grid.Cell]*searchNode
	cameFrom map[grid.Cell]grid.Cell
}

func newSearchState(capacity int) *searchState {
	return &searchState{
		nodes:    make(map[grid.Cell]*searchNode, capacity),
		cameFrom: make(map[grid.Cell]grid.Cell, capacity),
	}
}

func (s *searchState) node(c grid.Cell) *searchNode {
	n, ok := s.nodes[c]
	if !ok {
		n = &searchNode{}
		s.nodes[c] = n
	}
	return n
}

// preconditions reports whether a search between start and goal may proceed.
func preconditions(g *grid.Grid, start, goal grid.Cell, opts Options) bool {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return false
	}
	if g.IsWall(start) {
		return false
	}
	if g.IsWall(goal) && !opts.Closest {
		return false
	}
	return true
}

// Search runs A* from start to goal using a binary heap as the open set.
// Entering a cell costs that cell's weight; walls are never expanded.
func Search(g *grid.Grid, start, goal grid.Cell, opts Options) Path {
	if !preconditions(g, start, goal, opts) {
		return Path{}
	}

	heuristic := opts.heuristic(g)
	state := newSearchState(64)

	open := NewHeap(
		func(c grid.Cell) float64 { return state.nodes[c].f },
		func(a, b grid.Cell) bool { return state.nodes[a].h < state.nodes[b].h },
	)

	startNode := state.node(start)
	startNode.h = heuristic(start, goal)
	startNode.f = startNode.h
	startNode.visited = true
	open.Push(start)

	closest := start

	for open.Size() > 0 {
		current, _ := open.Pop()
		if current == goal {
			return reconstructPath(state.cameFrom, start, goal)
		}

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
			beenVisited := neighborNode.visited
			if beenVisited && gScore >= neighborNode.g {
				continue
			}

			if !beenVisited {
				neighborNode.h = heuristic(neighbor, goal)
			}
			neighborNode.visited = true
			neighborNode.g = gScore
			neighborNode.f = gScore + neighborNode.h
			state.cameFrom[neighbor] = current

			if opts.Closest {
				best := state.nodes[closest]
				if neighborNode.h < best.h || (neighborNode.h == best.h && neighborNode.g < best.g) {
					closest = neighbor
				}
			}

			if beenVisited {
				open.Rescore(neighbor)
			} else {
				open.Push(neighbor)
			}
		}
	}

	if opts.Closest && closest != start {
		return reconstructPath(state.cameFrom, start, closest)
	}
	return Path{}
}

// reconstructPath walks cameFrom back from goal and returns the cells in
// start to goal order, start excluded.
func reconstructPath(cameFrom map[grid.Cell]grid.Cell, start, goal grid.Cell) Path {
	var reversed Path
	current := goal
	for current != start {
		reversed = append(reversed, current)
		prev, ok := cameFrom[current]
		if !ok {
			return Path{}
		}
		current = prev
	}

	path := make(Path, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}
