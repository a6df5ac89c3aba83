package pathfinding

import "github.com/Mshel/ouroboros/internal/grid"

// SurvivalMove picks the neighbour of the head with the most open cells
// around it. The head is a wall for the count, and the tail tip is open
// unless the snake is growing this tick. Ties go to the first neighbour in
// grid.Neighbors order. ok is false when the head has no open neighbour.
func SurvivalMove(head grid.Cell, body []grid.Cell, growing bool, width, height int) (grid.Cell, bool) {
	obstacles := body
	if !growing && len(body) > 1 {
		obstacles = body[:len(body)-1]
	}
	g := grid.FromObstacles(width, height, obstacles)
	g.SetWeight(head, 0)

	var best grid.Cell
	maxOpenness := -1
	for _, neighbor := range g.Neighbors(head) {
		if g.IsWall(neighbor) {
			continue
		}

		openness := 0
		for _, sub := range g.Neighbors(neighbor) {
			if !g.IsWall(sub) {
				openness++
			}
		}

		if openness > maxOpenness {
			maxOpenness = openness
			best = neighbor
		}
	}

	return best, maxOpenness >= 0
}

// ChaseTail paths from the head to the current tail tip, which will have
// moved on by the time the head arrives.
func ChaseTail(head grid.Cell, body []grid.Cell, width, height int, find Finder) Path {
	if len(body) < 2 {
		return Path{}
	}
	if find == nil {
		find = FindPath
	}
	return find(head, body[len(body)-1], body, width, height)
}
