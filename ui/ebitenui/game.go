// Package ebitenui adapts the engine to ebiten's Update/Draw/Layout loop.
package ebitenui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const (
	panelWidth = 160
	lineHeight = 16
)

// Stepper is driven once per frame after the game update.
type Stepper interface {
	Step()
}

type Game struct {
	game     *game.Game
	pilot    Stepper
	cellSize int
}

// New returns an ebiten.Game for g. pilot may be nil.
func New(g *game.Game, pilot Stepper, cellSize int) *Game {
	return &Game{game: g, pilot: pilot, cellSize: cellSize}
}

var keyMap = []struct {
	ebiten ebiten.Key
	key    types.Key
}{
	{ebiten.KeyArrowUp, types.KeyUp},
	{ebiten.KeyArrowDown, types.KeyDown},
	{ebiten.KeyArrowLeft, types.KeyLeft},
	{ebiten.KeyArrowRight, types.KeyRight},
	{ebiten.KeyW, types.KeyUp},
	{ebiten.KeyS, types.KeyDown},
	{ebiten.KeyA, types.KeyLeft},
	{ebiten.KeyD, types.KeyRight},
	{ebiten.KeyP, types.KeyPause},
	{ebiten.KeySpace, types.KeyPause},
}

func (e *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			e.game.OnKey(k.key)
		}
	}

	e.game.Update(time.Second / time.Duration(ebiten.TPS()))
	if e.pilot != nil {
		e.pilot.Step()
	}
	return nil
}

func (e *Game) Draw(screen *ebiten.Image) {
	scene := ui.BuildScene(e.game.Snapshot(), e.game.Stats())
	size := float32(e.cellSize)
	boardW := float32(scene.Grid.Width) * size
	boardH := float32(scene.Grid.Height) * size

	vector.DrawFilledRect(screen, 0, 0, boardW, boardH, scene.Background, false)
	for _, c := range scene.Cells {
		vector.DrawFilledRect(screen, float32(c.Pos.X)*size, float32(c.Pos.Y)*size, size, size, c.Color, false)
	}

	for i, line := range scene.HUD {
		ebitenutil.DebugPrintAt(screen, line, e.cellSize+4, e.cellSize+i*lineHeight)
	}
	if scene.HasOverlay {
		vector.DrawFilledRect(screen, 0, 0, boardW, boardH, scene.Overlay, false)
		top := int(boardH)/2 - len(scene.Banner)*lineHeight/2
		for i, line := range scene.Banner {
			ebitenutil.DebugPrintAt(screen, line, int(boardW)/2-len(line)*3, top+i*lineHeight)
		}
	}
	if scene.Countdown != "" {
		ebitenutil.DebugPrintAt(screen, scene.Countdown, int(boardW)-len(scene.Countdown)*6-e.cellSize-4, int(boardH)-e.cellSize-lineHeight)
	}

	x := int(boardW) + 8
	ebitenutil.DebugPrintAt(screen, "Session:", x, 8)
	for i, line := range scene.Panel {
		ebitenutil.DebugPrintAt(screen, line, x+4, 8+(i+1)*lineHeight)
	}
	for i, line := range ui.KeyHelp {
		ebitenutil.DebugPrintAt(screen, line, x+4, 8+(len(scene.Panel)+i+2)*lineHeight)
	}
}

func (e *Game) Layout(_, _ int) (int, int) {
	grid := e.game.Grid()
	return grid.Width*e.cellSize + panelWidth, grid.Height * e.cellSize
}
