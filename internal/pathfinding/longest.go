package pathfinding

import (
	"math"

	"github.com/Mshel/ouroboros/internal/grid"
)

// Tunables control when tail chasing is preferred over going straight for
// the food.
type Tunables struct {
	// MinFreeSpace is the lower bound of the free cell threshold.
	MinFreeSpace float64
	// GrowthFactor scales the threshold with the snake length.
	GrowthFactor float64
}

var DefaultTunables = Tunables{MinFreeSpace: 10, GrowthFactor: 1.5}

// SpaceThreshold is the number of free cells that must be exceeded before a
// snake of the given length may take the longer route.
func (t Tunables) SpaceThreshold(length int) float64 {
	return math.Max(t.MinFreeSpace, float64(length)*t.GrowthFactor)
}

// LongestPath prefers circling toward the snake's own tail over the direct
// route to food, as long as there is room to spare and the food stays
// reachable. It lowers the chance of sealing the snake into a pocket but does
// not rule it out.
type LongestPath struct {
	Tunables Tunables
	Find     Finder
}

func NewLongestPath(tunables Tunables, find Finder) LongestPath {
	if find == nil {
		find = FindPath
	}
	return LongestPath{Tunables: tunables, Find: find}
}

// FindLongestPath returns the path to follow from start (the head, body[0])
// toward goal (the food). An empty result means the food is unreachable.
func (lp LongestPath) FindLongestPath(start, goal grid.Cell, body []grid.Cell, width, height int) Path {
	find := lp.Find
	if find == nil {
		find = FindPath
	}

	pathToFood := find(start, goal, body, width, height)
	if len(pathToFood) == 0 {
		return Path{}
	}

	if len(body) < 3 {
		return pathToFood
	}

	// The tail tip is vacated as the snake moves, so it is not an obstacle
	// when heading for the segment right before it.
	tailTarget := body[len(body)-2]
	pathToTail := find(start, tailTarget, body[:len(body)-1], width, height)

	freeCells := float64(width*height - len(body))
	useTail := len(pathToTail) > 0 &&
		freeCells > lp.Tunables.SpaceThreshold(len(body)) &&
		len(pathToTail) > len(pathToFood)
	if !useTail {
		return pathToFood
	}

	// Take one step along the tail path and check the food is still
	// reachable from there.
	next := pathToTail[0]
	simulated := make([]grid.Cell, 0, len(body))
	simulated = append(simulated, next)
	simulated = append(simulated, body[:len(body)-1]...)

	if len(find(next, goal, simulated, width, height)) == 0 {
		return pathToFood
	}
	return pathToTail
}
