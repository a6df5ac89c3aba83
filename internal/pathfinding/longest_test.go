package pathfinding

import (
	"testing"

	"github.com/Mshel/ouroboros/internal/grid"
)

func cells(xy ...int) []grid.Cell {
	result := make([]grid.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		result = append(result, grid.Cell{X: xy[i], Y: xy[i+1]})
	}
	return result
}

func TestFindPathTreatsBodyAsObstacles(t *testing.T) {
	body := cells(2, 2, 2, 1, 1, 1, 1, 2, 1, 3)
	head, food := body[0], grid.Cell{X: 0, Y: 2}

	for name, find := range map[string]Finder{"heap": FindPath, "scan": FindPathScan} {
		path := find(head, food, body, 5, 5)
		if len(path) == 0 {
			t.Fatalf("%s: expected a path around the body", name)
		}
		for _, c := range path {
			for _, segment := range body[1:] {
				if c == segment {
					t.Errorf("%s: path crosses body segment %v", name, c)
				}
			}
		}
		if path[len(path)-1] != food {
			t.Errorf("%s: path ends at %v, expected %v", name, path[len(path)-1], food)
		}
	}
}

func TestFinderByName(t *testing.T) {
	for _, name := range []string{"", "heap", "scan"} {
		if _, err := FinderByName(name); err != nil {
			t.Errorf("Expected %q to resolve, got %v", name, err)
		}
	}
	if _, err := FinderByName("dijkstra"); err == nil {
		t.Error("Expected unknown search form to fail")
	}
}

func TestLongestPathShortSnakeGoesForFood(t *testing.T) {
	lp := NewLongestPath(DefaultTunables, nil)
	body := cells(2, 2, 1, 2)

	path := lp.FindLongestPath(body[0], grid.Cell{X: 4, Y: 2}, body, 10, 10)
	if len(path) != 2 {
		t.Errorf("Expected direct 2 step food path, got %v", path)
	}
}

func TestLongestPathNoFood(t *testing.T) {
	lp := NewLongestPath(DefaultTunables, nil)
	// Food in the corner sealed off by the body.
	body := cells(3, 3, 1, 0, 1, 1, 0, 1)

	if path := lp.FindLongestPath(body[0], grid.Cell{X: 0, Y: 0}, body, 5, 5); len(path) != 0 {
		t.Errorf("Expected no path to sealed food, got %v", path)
	}
}

func TestLongestPathPrefersTail(t *testing.T) {
	lp := NewLongestPath(DefaultTunables, nil)
	body := cells(5, 5, 4, 5, 3, 5, 2, 5)
	food := grid.Cell{X: 6, Y: 5}

	path := lp.FindLongestPath(body[0], food, body, 10, 10)
	if len(path) != 4 {
		t.Fatalf("Expected 4 step tail path, got %v", path)
	}
	if path[len(path)-1] != (grid.Cell{X: 3, Y: 5}) {
		t.Errorf("Expected tail path to end at the tail target, got %v", path[len(path)-1])
	}
}

func TestLongestPathNeedsSpace(t *testing.T) {
	// Same layout as TestLongestPathPrefersTail but the threshold is above
	// the free cell count.
	lp := NewLongestPath(Tunables{MinFreeSpace: 500, GrowthFactor: 1.5}, nil)
	body := cells(5, 5, 4, 5, 3, 5, 2, 5)

	path := lp.FindLongestPath(body[0], grid.Cell{X: 6, Y: 5}, body, 10, 10)
	if len(path) != 1 {
		t.Errorf("Expected direct food path, got %v", path)
	}
}

func TestLongestPathRejectsUnsafeTail(t *testing.T) {
	body := cells(5, 5, 4, 5, 3, 5, 2, 5)
	food := grid.Cell{X: 6, Y: 5}

	// The third search is the one-step safety check; make it fail.
	calls := 0
	find := func(start, goal grid.Cell, b []grid.Cell, w, h int) Path {
		calls++
		if calls == 3 {
			if goal != food {
				t.Errorf("Expected safety check to target food, got %v", goal)
			}
			if b[0] != start {
				t.Errorf("Expected simulated body to start at the new head")
			}
			if len(b) != len(body) {
				t.Errorf("Expected simulated body of length %d, got %d", len(body), len(b))
			}
			return Path{}
		}
		return FindPath(start, goal, b, w, h)
	}

	lp := NewLongestPath(DefaultTunables, find)
	path := lp.FindLongestPath(body[0], food, body, 10, 10)

	if calls != 3 {
		t.Fatalf("Expected 3 searches, got %d", calls)
	}
	if len(path) != 1 || path[0] != food {
		t.Errorf("Expected fallback to the food path, got %v", path)
	}
}

func TestLongestPathFoodPocketClosesBehindHead(t *testing.T) {
	// Food sits in the corner pocket reachable only through the head. Any
	// step toward the tail seals the pocket, so the food path must win.
	body := cells(1, 0, 1, 1, 0, 1, 0, 2, 0, 3)
	food := grid.Cell{X: 0, Y: 0}

	tailPath := FindPath(body[0], body[len(body)-2], body[:len(body)-1], 10, 10)
	if len(tailPath) <= 1 {
		t.Fatalf("Expected a long tail path for this layout, got %v", tailPath)
	}

	path := NewLongestPath(DefaultTunables, nil).FindLongestPath(body[0], food, body, 10, 10)
	if len(path) != 1 || path[0] != food {
		t.Errorf("Expected the direct food path, got %v", path)
	}
}

func TestSpaceThreshold(t *testing.T) {
	if got := DefaultTunables.SpaceThreshold(4); got != 10 {
		t.Errorf("Expected floor of 10, got %f", got)
	}
	if got := DefaultTunables.SpaceThreshold(20); got != 30 {
		t.Errorf("Expected 30 for length 20, got %f", got)
	}
}

func TestSurvivalMovePicksMostOpen(t *testing.T) {
	body := cells(2, 2, 2, 1, 3, 1, 3, 0)

	move, ok := SurvivalMove(body[0], body, false, 5, 5)
	if !ok {
		t.Fatal("Expected a survival move")
	}
	// (1,2) and (2,3) both have 3 open neighbours; (1,2) comes first.
	if move != (grid.Cell{X: 1, Y: 2}) {
		t.Errorf("Expected (1,2), got %v", move)
	}
}

func TestSurvivalMoveUsesVacatingTail(t *testing.T) {
	body := cells(0, 0, 1, 0, 1, 1, 0, 1)

	if _, ok := SurvivalMove(body[0], body, true, 5, 5); ok {
		t.Error("Expected no move when boxed in and growing")
	}

	move, ok := SurvivalMove(body[0], body, false, 5, 5)
	if !ok || move != (grid.Cell{X: 0, Y: 1}) {
		t.Errorf("Expected to follow the vacating tail to (0,1), got %v ok=%v", move, ok)
	}
}

func TestSurvivalMoveTrapped(t *testing.T) {
	// The tail tip is open but not next to the head.
	body := cells(0, 0, 1, 0, 0, 1, 1, 1)

	if move, ok := SurvivalMove(body[0], body, false, 5, 5); ok {
		t.Errorf("Expected trapped head, got %v", move)
	}
}

func TestChaseTail(t *testing.T) {
	body := cells(5, 5, 4, 5, 3, 5, 2, 5)

	path := ChaseTail(body[0], body, 10, 10, nil)
	if len(path) == 0 {
		t.Fatal("Expected a path to the tail")
	}
	if path[len(path)-1] != body[len(body)-1] {
		t.Errorf("Expected path to end at the tail tip, got %v", path[len(path)-1])
	}

	if path := ChaseTail(body[0], body[:1], 10, 10, nil); len(path) != 0 {
		t.Errorf("Expected no tail to chase for a single segment, got %v", path)
	}
}
