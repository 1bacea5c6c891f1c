package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/level"
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager answers occupancy questions about the static layout.
type CollisionManager struct {
	grid      types.Grid
	walls     map[types.Point]struct{}
	invisible map[types.Point]struct{}
	visible   []types.Point
}

func NewCollisionManager(grid types.Grid, lvl level.Level) *CollisionManager {
	cm := &CollisionManager{
		grid:      grid,
		walls:     make(map[types.Point]struct{}, len(lvl.Walls)),
		invisible: make(map[types.Point]struct{}, len(lvl.InvisibleWalls)),
		visible:   make([]types.Point, 0, len(lvl.Walls)),
	}
	for _, w := range lvl.Walls {
		if _, dup := cm.walls[w]; dup {
			continue
		}
		cm.walls[w] = struct{}{}
		cm.visible = append(cm.visible, w)
	}
	for _, w := range lvl.InvisibleWalls {
		cm.invisible[w] = struct{}{}
	}
	return cm
}

// CheckCollision classifies what the head would hit at pos. The body is the
// pre-move body, so the current tail cell still counts.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake != nil && snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks walls, invisible walls and the board edge.
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	if !cm.grid.Contains(pos) {
		return true
	}
	if _, ok := cm.walls[pos]; ok {
		return true
	}
	_, ok := cm.invisible[pos]
	return ok
}

// ValidateSpawnPosition reports whether pos is free of walls and the body.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// Walls returns the rendered walls. Invisible walls are never exposed.
func (cm *CollisionManager) Walls() []types.Point {
	out := make([]types.Point, len(cm.visible))
	copy(out, cm.visible)
	return out
}
