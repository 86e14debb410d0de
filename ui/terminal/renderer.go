// Package terminal runs the game in a terminal with tcell. Each board cell
// is two columns wide so cells look square.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const cellColumns = 2

type Renderer struct {
	screen tcell.Screen
	board  []color.RGBA
	grid   types.Grid
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Draw(scene ui.Scene) {
	r.paintBoard(scene)

	r.screen.Clear()
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			style := tcell.StyleDefault.Background(toColor(r.board[y*r.grid.Width+x]))
			for c := 0; c < cellColumns; c++ {
				r.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}

	for i, line := range scene.HUD {
		r.drawText(cellColumns+1, 1+i, line)
	}
	if scene.HasOverlay {
		top := r.grid.Height/2 - len(scene.Banner)/2
		for i, line := range scene.Banner {
			r.drawText((r.grid.Width*cellColumns-len(line))/2, top+i, line)
		}
	}
	if scene.Countdown != "" {
		r.drawText(r.grid.Width*cellColumns-len(scene.Countdown)-cellColumns-1, r.grid.Height-2, scene.Countdown)
	}

	panelX := r.grid.Width*cellColumns + 2
	r.drawText(panelX, 0, "Session:")
	for i, line := range scene.Panel {
		r.drawText(panelX+1, 1+i, line)
	}
	for i, line := range ui.KeyHelp {
		r.drawText(panelX+1, len(scene.Panel)+2+i, line)
	}

	r.screen.Show()
}

// paintBoard resolves the final color of every board cell.
func (r *Renderer) paintBoard(scene ui.Scene) {
	r.grid = scene.Grid
	n := scene.Grid.Width * scene.Grid.Height
	if cap(r.board) < n {
		r.board = make([]color.RGBA, n)
	}
	r.board = r.board[:n]

	for i := range r.board {
		r.board[i] = scene.Background
	}
	for _, c := range scene.Cells {
		if c.Pos.X < 0 || c.Pos.Y < 0 || c.Pos.X >= r.grid.Width || c.Pos.Y >= r.grid.Height {
			continue
		}
		r.board[c.Pos.Y*r.grid.Width+c.Pos.X] = c.Color
	}
	if scene.HasOverlay {
		for i := range r.board {
			r.board[i] = blend(r.board[i], scene.Overlay)
		}
	}
}

// drawText writes s starting at column x, keeping the board color behind it.
func (r *Renderer) drawText(x, y int, s string) {
	for i, ch := range []rune(s) {
		col := x + i
		style := tcell.StyleDefault.Foreground(toColor(ui.TextColor))
		if bx := col / cellColumns; col >= 0 && bx < r.grid.Width && y >= 0 && y < r.grid.Height {
			style = style.Background(toColor(r.board[y*r.grid.Width+bx]))
		}
		r.screen.SetContent(col, y, ch, nil, style)
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend paints over on top of base using over's alpha.
func blend(base, over color.RGBA) color.RGBA {
	a := uint32(over.A)
	mix := func(b, o uint8) uint8 {
		return uint8((uint32(o)*a + uint32(b)*(255-a)) / 255)
	}
	return color.RGBA{R: mix(base.R, over.R), G: mix(base.G, over.G), B: mix(base.B, over.B), A: 255}
}
