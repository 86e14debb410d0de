// Package window draws a ui.Scene with raylib and reads keys from the raylib
// keyboard state.
package window

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const (
	borderPadding = 10
	minFontSize   = 12
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	gameWidth       int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 5
	r.gameWidth = r.screenWidth - r.statsPanel
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	r.cellSize = max(1, min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height)))
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

func (r *Renderer) Draw(scene ui.Scene) {
	r.UpdateDimensions()
	r.layout(scene.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, scene.Background)
	for _, c := range scene.Cells {
		rl.DrawRectangle(
			r.offsetX+int32(c.Pos.X)*r.cellSize,
			r.offsetY+int32(c.Pos.Y)*r.cellSize,
			r.cellSize, r.cellSize, c.Color)
	}

	fontSize := max(minFontSize, r.screenHeight/45)
	for i, line := range scene.HUD {
		rl.DrawText(line, r.offsetX+r.cellSize+5, r.offsetY+5+int32(i)*(fontSize+4), fontSize, ui.TextColor)
	}

	if scene.HasOverlay {
		rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, scene.Overlay)
		centerY := r.offsetY + r.totalGridHeight/2
		for i, line := range scene.Banner {
			width := rl.MeasureText(line, fontSize*2)
			rl.DrawText(line,
				r.offsetX+(r.totalGridWidth-width)/2,
				centerY+int32(i)*(fontSize*2+6),
				fontSize*2, ui.TextColor)
		}
	}
	if scene.Countdown != "" {
		width := rl.MeasureText(scene.Countdown, fontSize)
		rl.DrawText(scene.Countdown,
			r.offsetX+r.totalGridWidth-width-r.cellSize-5,
			r.offsetY+r.totalGridHeight-r.cellSize-fontSize-5,
			fontSize, ui.TextColor)
	}

	r.drawStatsPanel(scene, fontSize)
}

func (r *Renderer) drawStatsPanel(scene ui.Scene, fontSize int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)
	lineHeight := fontSize + 6

	rl.DrawRectangle(r.gameWidth, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	rl.DrawText("Session:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for _, line := range scene.Panel {
		rl.DrawText(line, statsX+5, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY += lineHeight / 2
	for _, line := range ui.KeyHelp {
		rl.DrawText(line, statsX+5, statsY, fontSize, rl.LightGray)
		statsY += lineHeight
	}
}

// PressedKeys returns the game keys pressed since the previous frame, in a
// fixed order.
func PressedKeys() []types.Key {
	var keys []types.Key
	for _, k := range keyMap {
		if rl.IsKeyPressed(k.raylib) {
			keys = append(keys, k.key)
		}
	}
	return keys
}

var keyMap = []struct {
	raylib int32
	key    types.Key
}{
	{rl.KeyUp, types.KeyUp},
	{rl.KeyDown, types.KeyDown},
	{rl.KeyLeft, types.KeyLeft},
	{rl.KeyRight, types.KeyRight},
	{rl.KeyW, types.KeyUp},
	{rl.KeyS, types.KeyDown},
	{rl.KeyA, types.KeyLeft},
	{rl.KeyD, types.KeyRight},
	{rl.KeyP, types.KeyPause},
	{rl.KeySpace, types.KeyPause},
}

// FrameTime is the duration of the last frame.
func FrameTime() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}
