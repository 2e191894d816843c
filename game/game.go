package game

import (
	"fmt"

	"snake-grid/game/manager"
	"snake-grid/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game tracks the score, the apple and whether the round is over.
type Game struct {
	UUID     string
	Grid     types.Grid
	score    int
	finished bool
	apple    types.Point
	food     *manager.FoodManager
}

func NewGame(grid types.Grid, rng *rand.Rand) *Game {
	g := &Game{
		UUID: uuid.New().String(),
		Grid: grid,
		food: manager.NewFoodManager(grid, rng),
	}
	g.apple = g.food.GenerateFood()
	return g
}

// SnakeAteApple reports whether (x, y) is the apple cell.
func (g *Game) SnakeAteApple(x, y int) bool {
	return g.food.IsFoodCollision(types.Point{X: x, Y: y}, g.apple)
}

// RecordAte scores one point and places a new apple.
func (g *Game) RecordAte() {
	g.score++
	g.apple = g.food.GenerateFood()
}

// Finish ends the round. Calling it again has no effect.
func (g *Game) Finish() {
	g.finished = true
}

func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Apple() types.Point {
	return g.apple
}

// StatusText is the line shown at the top of the window.
func (g *Game) StatusText() string {
	if !g.finished {
		return fmt.Sprintf("Score: %d", g.score)
	}
	return fmt.Sprintf("Game over! Your final score was %d. Press 'R' to restart", g.score)
}

// Draw renders the apple (hidden once finished) and the status line.
func (g *Game) Draw(c types.Canvas) {
	if !g.finished {
		c.Circle(
			int32(g.apple.X*types.CellSize+types.CellSize/2),
			int32(g.apple.Y*types.CellSize+types.CellSize/2),
			types.CellSize/2,
			types.Green)
	}
	c.Text(g.StatusText(), 0, 0, types.FontSize, types.Yellow)
}
