package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports the fatal collision, if any, for the snake's current head.
// Walls are checked before the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(snake.Head()) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsWallCollision checks if a position has left the grid.
// A snake moves one cell per tick, so in practice this fires on
// x or y equal to -1 or the grid size.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks the head against every other segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HeadOnBody()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position
}
