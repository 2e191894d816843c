package main

import (
	"log"
	"time"

	"snake-grid/game"
	"snake-grid/game/types"
	"snake-grid/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	log.SetPrefix("[snake] ")

	rl.InitWindow(types.WindowWidth, types.WindowHeight, types.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		log.Fatalf("window %dx%d could not be created", types.WindowWidth, types.WindowHeight)
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(types.RenderFPS)

	grid := types.DefaultGrid()
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	session := game.NewSession(grid, rng)
	renderer := ui.NewRenderer(types.Navy)

	log.Printf("started %dx%d grid, game %s", grid.Width, grid.Height, session.Game().UUID)

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		for _, key := range ui.PressedKeys() {
			if session.HandleKey(key) {
				log.Printf("restart, game %s", session.Game().UUID)
			}
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= types.TickInterval {
			lastUpdate = time.Now()
			res := session.Tick()
			if res.Finished {
				log.Printf("game %s over, score %d", session.Game().UUID, session.Game().Score())
			}
		}

		renderer.Frame(session)
	}
}
