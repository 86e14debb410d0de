package window

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/ui"
)

const (
	targetFPS  = 60
	panelWidth = 220
)

// Stepper is driven once per frame after the game update.
type Stepper interface {
	Step()
}

// Run opens a window sized for g and plays until the window is closed, Q is
// pressed or ctx is done. It must be called from the main goroutine.
func Run(ctx context.Context, g *game.Game, pilot Stepper, cellSize int, title string) error {
	grid := g.Grid()
	rl.InitWindow(int32(grid.Width*cellSize+panelWidth), int32(grid.Height*cellSize), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer()
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, key := range PressedKeys() {
			g.OnKey(key)
		}
		g.Update(FrameTime())
		if pilot != nil {
			pilot.Step()
		}

		renderer.Draw(ui.BuildScene(g.Snapshot(), g.Stats()))
	}
	return nil
}
