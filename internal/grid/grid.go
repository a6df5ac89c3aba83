// Package grid models the bounded board the snake lives on: cells, unit
// directions and a weighted walkability map.
package grid

// Cell is a board coordinate. Cells compare by value and are used directly as
// map keys.
type Cell struct {
	X int
	Y int
}

// Step returns the cell reached by moving one unit in direction d.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + d.Dx, Y: c.Y + d.Dy}
}

// Direction is a movement delta. The zero value means "not moving".
type Direction struct {
	Dx, Dy int
}

var (
	Up    = Direction{Dx: 0, Dy: -1}
	Down  = Direction{Dx: 0, Dy: 1}
	Left  = Direction{Dx: -1, Dy: 0}
	Right = Direction{Dx: 1, Dy: 0}
)

// Directions lists the four orthogonal moves.
var Directions = []Direction{Right, Down, Left, Up}

func (d Direction) IsZero() bool {
	return d.Dx == 0 && d.Dy == 0
}

func (d Direction) Opposite() Direction {
	return Direction{Dx: -d.Dx, Dy: -d.Dy}
}

// IsUnit reports whether d moves exactly one cell along exactly one axis.
func (d Direction) IsUnit() bool {
	return abs(d.Dx)+abs(d.Dy) == 1
}

// DirectionBetween returns the delta from a to b and whether it is an
// orthogonal unit step.
func DirectionBetween(from, to Cell) (Direction, bool) {
	d := Direction{Dx: to.X - from.X, Dy: to.Y - from.Y}
	return d, d.IsUnit()
}

func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Grid is a width x height map of traversal weights. A weight of 0 is a wall,
// anything greater is the cost of entering the cell.
type Grid struct {
	Width    int
	Height   int
	Diagonal bool

	weights []int
}

// New returns a grid where every cell is walkable with weight 1.
func New(width, height int, diagonal bool) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		Diagonal: diagonal,
		weights:  make([]int, max(width, 0)*max(height, 0)),
	}
	for i := range g.weights {
		g.weights[i] = 1
	}
	return g
}

// FromObstacles builds a 4-connected grid where every obstacle cell is a wall.
// Cells listed in open are made walkable afterwards, so a search goal that
// sits on an obstacle can still be reached.
func FromObstacles(width, height int, obstacles []Cell, open ...Cell) *Grid {
	g := New(width, height, false)
	for _, c := range obstacles {
		g.SetWeight(c, 0)
	}
	for _, c := range open {
		g.SetWeight(c, 1)
	}
	return g
}

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Capacity is the number of cells on the board.
func (g *Grid) Capacity() int {
	return g.Width * g.Height
}

// Weight returns the cell weight, 0 for off-grid cells.
func (g *Grid) Weight(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.weights[c.Y*g.Width+c.X]
}

// SetWeight is a no-op for off-grid cells. Negative weights are clamped to 0.
func (g *Grid) SetWeight(c Cell, weight int) {
	if !g.InBounds(c) {
		return
	}
	g.weights[c.Y*g.Width+c.X] = max(weight, 0)
}

// IsWall reports whether c cannot be entered. Off-grid cells are walls.
func (g *Grid) IsWall(c Cell) bool {
	return g.Weight(c) == 0
}

// Neighbors returns the in-bounds neighbours of c whether walkable or not:
// left, right, up, down, then the diagonals when enabled.
func (g *Grid) Neighbors(c Cell) []Cell {
	candidates := []Cell{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	}
	if g.Diagonal {
		candidates = append(candidates,
			Cell{X: c.X - 1, Y: c.Y - 1},
			Cell{X: c.X + 1, Y: c.Y - 1},
			Cell{X: c.X - 1, Y: c.Y + 1},
			Cell{X: c.X + 1, Y: c.Y + 1},
		)
	}

	result := make([]Cell, 0, len(candidates))
	for _, n := range candidates {
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
