package ui

import (
	"fmt"
	"image/color"

	"snake-arcade/game"
	"snake-arcade/game/stats"
	"snake-arcade/game/types"
)

var (
	BackgroundColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BorderColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SnakeColor      = color.RGBA{R: 0, G: 204, B: 0, A: 255}
	HeadColor       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	FoodColor       = color.RGBA{R: 204, G: 0, B: 0, A: 255}
	GameOverColor   = color.RGBA{R: 204, G: 0, B: 0, A: 128}
	PausedColor     = color.RGBA{R: 0, G: 0, B: 0, A: 128}
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type CellKind int

const (
	CellBorder CellKind = iota
	CellBody
	CellHead
	CellFood
)

type Cell struct {
	Pos   types.Point
	Kind  CellKind
	Color color.RGBA
}

// Scene is one frame described without reference to any drawing library.
// Cells are ordered so that later entries paint over earlier ones.
type Scene struct {
	Grid       types.Grid
	Background color.RGBA
	Cells      []Cell

	// HUD is always shown; Overlay covers the whole board when HasOverlay is set
	// and Banner is drawn on top of it.
	HUD        []string
	HasOverlay bool
	Overlay    color.RGBA
	Banner     []string

	// Countdown is the restart timer text, empty unless the round is over.
	Countdown string

	Panel []string
}

func BuildScene(snap game.Snapshot, summary stats.Summary) Scene {
	s := Scene{
		Grid:       snap.Grid,
		Background: BackgroundColor,
		HUD:        []string{fmt.Sprintf("Score: %d", snap.Score)},
		Panel:      panelLines(summary),
	}

	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if snap.Grid.IsWall(p) {
				s.Cells = append(s.Cells, Cell{Pos: p, Kind: CellBorder, Color: BorderColor})
			}
		}
	}

	// Body is head first; paint the tail end first so the head stays on top.
	for i := len(snap.Body) - 1; i >= 1; i-- {
		s.Cells = append(s.Cells, Cell{Pos: snap.Body[i], Kind: CellBody, Color: SnakeColor})
	}
	if len(snap.Body) > 0 {
		s.Cells = append(s.Cells, Cell{Pos: snap.Body[0], Kind: CellHead, Color: HeadColor})
	}

	if snap.FoodExists {
		s.Cells = append(s.Cells, Cell{Pos: snap.Food, Kind: CellFood, Color: FoodColor})
	}

	switch snap.State {
	case types.Paused:
		s.HasOverlay = true
		s.Overlay = PausedColor
		s.Banner = []string{"Paused"}
	case types.GameOver:
		s.HasOverlay = true
		s.Overlay = GameOverColor
		s.Banner = []string{"Game Over", fmt.Sprintf("Score: %d", snap.Score)}
		s.Countdown = fmt.Sprintf("countdown: %.2f", snap.RestartIn.Seconds())
	}
	return s
}

func panelLines(summary stats.Summary) []string {
	return []string{
		fmt.Sprintf("Rounds: %d", summary.Rounds),
		fmt.Sprintf("Best: %d", summary.BestScore),
		fmt.Sprintf("Last: %d", summary.LastScore),
		fmt.Sprintf("Avg Score: %.1f", summary.AverageScore),
		fmt.Sprintf("Avg Duration: %.1fs", summary.AverageDuration),
	}
}

// KeyHelp lists the controls shared by every host.
var KeyHelp = []string{"Arrows: move", "P: pause", "Esc: quit"}
