package types

import "time"

// Point is a cell on the board in grid units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions. The outermost ring of cells is wall.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsWall reports whether p lies on the border or outside the board.
func (g Grid) IsWall(p Point) bool {
	return !g.IsInterior(p)
}

// IsInterior reports whether p is a playable cell.
func (g Grid) IsInterior(p Point) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// InteriorCells returns the number of playable cells.
func (g Grid) InteriorCells() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// Game constants
const (
	DefaultWidth           = 30
	DefaultHeight          = 30
	DefaultMovingPeriod    = 100 * time.Millisecond
	DefaultRestartTime     = time.Second
	DefaultStartLength     = 2
	DefaultMaxFoodAttempts = 64
)

var (
	DefaultStart = Point{X: 2, Y: 2}
	DefaultFood  = Point{X: 6, Y: 4}
)
