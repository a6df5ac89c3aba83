package grid

import "testing"

func TestNeighborsStayOnGrid(t *testing.T) {
	g := New(3, 3, false)

	corner := g.Neighbors(Cell{X: 0, Y: 0})
	if len(corner) != 2 {
		t.Fatalf("Expected 2 neighbours for corner, got %d: %v", len(corner), corner)
	}

	center := g.Neighbors(Cell{X: 1, Y: 1})
	want := []Cell{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}}
	if len(center) != len(want) {
		t.Fatalf("Expected %d neighbours, got %d", len(want), len(center))
	}
	for i := range want {
		if center[i] != want[i] {
			t.Errorf("Neighbour %d: expected %v, got %v", i, want[i], center[i])
		}
	}
}

func TestNeighborsDiagonal(t *testing.T) {
	g := New(3, 3, true)

	if n := len(g.Neighbors(Cell{X: 1, Y: 1})); n != 8 {
		t.Errorf("Expected 8 neighbours in diagonal mode, got %d", n)
	}
	if n := len(g.Neighbors(Cell{X: 0, Y: 0})); n != 3 {
		t.Errorf("Expected 3 neighbours for diagonal corner, got %d", n)
	}
}

func TestNeighborsIncludeWalls(t *testing.T) {
	g := New(3, 1, false)
	g.SetWeight(Cell{X: 0, Y: 0}, 0)

	n := g.Neighbors(Cell{X: 1, Y: 0})
	if len(n) != 2 {
		t.Fatalf("Expected walls to be listed as neighbours, got %v", n)
	}
	if !g.IsWall(n[0]) {
		t.Errorf("Expected %v to be a wall", n[0])
	}
}

func TestFromObstaclesOpensGoal(t *testing.T) {
	body := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	g := FromObstacles(4, 4, body, Cell{X: 2, Y: 0})

	if !g.IsWall(Cell{X: 1, Y: 0}) {
		t.Error("Expected obstacle cell to be a wall")
	}
	if g.IsWall(Cell{X: 2, Y: 0}) {
		t.Error("Expected open cell to be walkable")
	}
	if !g.IsWall(Cell{X: -1, Y: 0}) {
		t.Error("Expected off-grid cell to count as wall")
	}
}

func TestDirectionBetween(t *testing.T) {
	if d, ok := DirectionBetween(Cell{X: 2, Y: 2}, Cell{X: 2, Y: 1}); !ok || d != Up {
		t.Errorf("Expected Up, got %v ok=%v", d, ok)
	}
	if _, ok := DirectionBetween(Cell{X: 2, Y: 2}, Cell{X: 3, Y: 3}); ok {
		t.Error("Diagonal step must not be a unit step")
	}
	if _, ok := DirectionBetween(Cell{X: 2, Y: 2}, Cell{X: 2, Y: 2}); ok {
		t.Error("Zero step must not be a unit step")
	}
	if Left.Opposite() != Right {
		t.Error("Expected opposite of Left to be Right")
	}
}
