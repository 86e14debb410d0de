package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// ErrNoFreeCell is returned when every interior cell is covered by the snake.
var ErrNoFreeCell = errors.New("no free cell for food")

// FoodManager owns the single food item on the board.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	maxAttempts  int
	collisionMgr *CollisionManager

	food   types.Point
	exists bool
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand, maxAttempts int) *FoodManager {
	if maxAttempts < 1 {
		maxAttempts = types.DefaultMaxFoodAttempts
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		maxAttempts:  maxAttempts,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Exists() bool {
	return fm.exists
}

// Position returns the food cell and whether food is on the board.
func (fm *FoodManager) Position() (types.Point, bool) {
	return fm.food, fm.exists
}

// Place puts food at p unconditionally.
func (fm *FoodManager) Place(p types.Point) {
	fm.food = p
	fm.exists = true
}

func (fm *FoodManager) Clear() {
	fm.exists = false
}

// Consume removes the food if it sits at head and reports whether it did.
func (fm *FoodManager) Consume(head types.Point) bool {
	if !fm.exists || !fm.collisionMgr.IsFoodCollision(head, fm.food) {
		return false
	}
	fm.exists = false
	return true
}

// Spawn places food on a uniformly random interior cell not covered by the
// snake. Rejection sampling is tried first; once the attempt budget is spent
// the free cells are enumerated and one is drawn among them.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, error) {
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food := fm.randomInterior()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			fm.Place(food)
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	food := free[fm.rng.Intn(len(free))]
	fm.Place(food)
	return food, nil
}

func (fm *FoodManager) randomInterior() types.Point {
	return types.Point{
		X: 1 + fm.rng.Intn(fm.grid.Width-2),
		Y: 1 + fm.rng.Intn(fm.grid.Height-2),
	}
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.InteriorCells())
	for y := 1; y <= fm.grid.Height-2; y++ {
		for x := 1; x <= fm.grid.Width-2; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
