package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// FoodMargin is the inset from each buffer edge inside which food spawns
const FoodMargin = 4

// FoodSpawner places food uniformly inside the inset margin.
// It does not look at the snake, so food may land under the body.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner seeds the generator; seed 0 picks a time-based seed
func NewFoodSpawner(seed uint64) *FoodSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn returns a position with row in [FoodMargin, rows-FoodMargin] and
// col in [FoodMargin, cols-FoodMargin]
func (f *FoodSpawner) Spawn(rows, cols int) Point {
	return Point{
		Row: FoodMargin + f.rng.Intn(rows-2*FoodMargin+1),
		Col: FoodMargin + f.rng.Intn(cols-2*FoodMargin+1),
	}
}
