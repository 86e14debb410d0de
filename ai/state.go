package ai

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// State is what the agent sees: where the food is relative to the head and
// which of the three reachable cells would kill it.
type State struct {
	FoodDX, FoodDY int // sign of food - head, 0 when aligned or no food
	DangerStraight bool
	DangerLeft     bool
	DangerRight    bool
}

// Key is the Q-table key for s.
func (s State) Key() string {
	return fmt.Sprintf("%d:%d:%d%d%d", s.FoodDX, s.FoodDY,
		boolToInt(s.DangerStraight), boolToInt(s.DangerLeft), boolToInt(s.DangerRight))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Observe builds the state for snap. danger reports whether a head on a
// cell would collide.
func Observe(snap game.Snapshot, danger func(types.Point) bool) State {
	dir := snap.Direction
	s := State{
		DangerStraight: danger(snap.Head.Add(dir.ToPoint())),
		DangerLeft:     danger(snap.Head.Add(dir.TurnLeft().ToPoint())),
		DangerRight:    danger(snap.Head.Add(dir.TurnRight().ToPoint())),
	}
	if snap.FoodExists {
		s.FoodDX = sign(snap.Food.X - snap.Head.X)
		s.FoodDY = sign(snap.Food.Y - snap.Head.Y)
	}
	return s
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// foodDistance is the Manhattan distance from head to food, or -1 when there
// is no food on the board.
func foodDistance(snap game.Snapshot) int {
	if !snap.FoodExists {
		return -1
	}
	return abs(snap.Head.X-snap.Food.X) + abs(snap.Head.Y-snap.Food.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Action is a turn relative to the current heading.
type Action int

const (
	Straight Action = iota
	Left
	Right
	numActions
)

func (a Action) String() string {
	switch a {
	case Straight:
		return "straight"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Apply returns the absolute heading after taking a from dir.
func (a Action) Apply(dir types.Direction) types.Direction {
	switch a {
	case Left:
		return dir.TurnLeft()
	case Right:
		return dir.TurnRight()
	default:
		return dir
	}
}
