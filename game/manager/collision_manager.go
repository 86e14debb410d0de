package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the snake's head to pos. Self overlap wins
// over the wall so that a body cell is reported as such.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if snake != nil && snake.Overlaps(pos) {
		return types.SelfCollision
	}
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return cm.grid.IsWall(pos)
}

// IsDanger reports whether stepping onto pos would end the round.
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) != types.NoCollision
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Overlaps(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
