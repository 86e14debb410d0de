package game

import (
	"time"

	"snake-arcade/game/types"
)

// Snapshot is a consistent read of everything a renderer needs.
type Snapshot struct {
	RoundID    string          `json:"round_id"`
	Grid       types.Grid      `json:"grid"`
	Body       []types.Point   `json:"body"`
	Head       types.Point     `json:"head"`
	Direction  types.Direction `json:"direction"`
	Food       types.Point     `json:"food"`
	FoodExists bool            `json:"food_exists"`
	Score      int             `json:"score"`
	State      types.State     `json:"state"`
	RestartIn  time.Duration   `json:"restart_in_ns"`
	Ticks      int             `json:"ticks"`
}

func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	food, exists := g.foodMgr.Position()
	return Snapshot{
		RoundID:    g.roundID,
		Grid:       g.grid,
		Body:       g.snake.Body(),
		Head:       g.snake.Head(),
		Direction:  g.snake.Direction(),
		Food:       food,
		FoodExists: exists,
		Score:      g.score,
		State:      g.stateMgr.State(),
		RestartIn:  g.stateMgr.RestartIn(),
		Ticks:      g.ticks,
	}
}
