package game

import (
	"errors"
	"fmt"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// ErrInvalidConfig is wrapped by every validation failure from New.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the rules of a game. The zero value is not usable, start from
// DefaultConfig.
type Config struct {
	Width  int
	Height int

	MovingPeriod time.Duration
	RestartTime  time.Duration

	// Start is the tail cell of the initial snake, the head lies StartLength-1
	// cells further along StartDirection.
	Start          types.Point
	StartLength    int
	StartDirection types.Direction

	// InitialFood is placed when the first round begins unless NoInitialFood
	// is set. Restarts always begin without food.
	InitialFood   types.Point
	NoInitialFood bool

	// MaxFoodAttempts bounds rejection sampling before the free cells are
	// enumerated.
	MaxFoodAttempts int

	// Seed for food placement. Zero picks a time based seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:           types.DefaultWidth,
		Height:          types.DefaultHeight,
		MovingPeriod:    types.DefaultMovingPeriod,
		RestartTime:     types.DefaultRestartTime,
		Start:           types.DefaultStart,
		StartLength:     types.DefaultStartLength,
		StartDirection:  types.Right,
		InitialFood:     types.DefaultFood,
		MaxFoodAttempts: types.DefaultMaxFoodAttempts,
	}
}

// Validate checks that the board can hold the border and the initial snake.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: board %dx%d has no interior", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MovingPeriod <= 0 {
		return fmt.Errorf("%w: moving period must be positive, got %v", ErrInvalidConfig, c.MovingPeriod)
	}
	if c.RestartTime <= 0 {
		return fmt.Errorf("%w: restart time must be positive, got %v", ErrInvalidConfig, c.RestartTime)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("%w: start length must be at least 1, got %d", ErrInvalidConfig, c.StartLength)
	}
	if c.StartDirection == types.None {
		return fmt.Errorf("%w: start direction is required", ErrInvalidConfig)
	}
	if c.MaxFoodAttempts < 0 {
		return fmt.Errorf("%w: max food attempts must not be negative", ErrInvalidConfig)
	}

	grid := types.Grid{Width: c.Width, Height: c.Height}
	snake := entity.Spawn(c.Start, c.StartLength, c.StartDirection)
	for _, p := range snake.Body() {
		if !grid.IsInterior(p) {
			return fmt.Errorf("%w: start body cell %v is outside the %dx%d interior", ErrInvalidConfig, p, c.Width, c.Height)
		}
	}
	if !c.NoInitialFood {
		if !grid.IsInterior(c.InitialFood) {
			return fmt.Errorf("%w: initial food %v is outside the interior", ErrInvalidConfig, c.InitialFood)
		}
		if snake.Overlaps(c.InitialFood) {
			return fmt.Errorf("%w: initial food %v lies on the snake", ErrInvalidConfig, c.InitialFood)
		}
	}
	return nil
}

func (c Config) grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}
