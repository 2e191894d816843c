package manager

import (
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager picks apple cells. Every draw is uniform over the whole grid
// and independent of the snake, so an apple can land on the body.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// IsFoodCollision checks if a position is on the food
func (fm *FoodManager) IsFoodCollision(pos, food types.Point) bool {
	return pos == food
}
