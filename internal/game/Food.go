package game

import (
	"time"

	"github.com/Mshel/ouroboros/internal/grid"
	"golang.org/x/exp/rand"
)

// FoodSpawner places food uniformly among the free cells.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner seeds from the clock when seed is 0.
func NewFoodSpawner(seed int64) *FoodSpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &FoodSpawner{rng: rand.New(rand.NewSource(uint64(seed)))}
}

// Spawn returns a random cell not covered by body, or ErrBoardFull.
func (f *FoodSpawner) Spawn(body []grid.Cell, width, height int) (grid.Cell, error) {
	occupied := make(map[grid.Cell]struct{}, len(body))
	for _, segment := range body {
		occupied[segment] = struct{}{}
	}

	free := make([]grid.Cell, 0, max(width*height-len(occupied), 0))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := grid.Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return grid.Cell{}, ErrBoardFull
	}
	return free[f.rng.Intn(len(free))], nil
}
