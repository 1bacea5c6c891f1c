package game

import (
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// FoodView is a food item as the renderer sees it.
type FoodView struct {
	Position types.Point
	Kind     manager.FoodKind
	Visible  bool
}

// Snapshot is a read-only copy of everything a renderer or an autopilot
// may look at. Mutating it has no effect on the game.
type Snapshot struct {
	Grid      types.Grid
	State     State
	Score     int
	HighScore int
	Games     int
	Average   float64
	LastGame  time.Duration // zero until a game has ended

	Body      []types.Point // head first
	Direction types.Direction
	Food      []FoodView
	Walls     []types.Point // invisible walls are never included

	Ticks        int
	TickInterval float64
	SessionID    string
	Level        string
	Collision    manager.CollisionType
}

// Head returns the first body cell.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	items := g.foodMgr.GetFoodList()
	food := make([]FoodView, 0, len(items))
	for _, f := range items {
		food = append(food, FoodView{
			Position: f.Position,
			Kind:     f.Kind,
			Visible:  f.Visible(g.cfg.BlinkWindow),
		})
	}

	var last time.Duration
	if rec, ok := g.stateMgr.LastGame(); ok {
		last = rec.Duration()
	}

	return Snapshot{
		Grid:         g.grid,
		State:        g.state,
		Score:        g.score,
		HighScore:    g.stateMgr.GetHighScore(),
		Games:        g.stateMgr.GamesPlayed(),
		Average:      g.stateMgr.GetAverageScore(),
		LastGame:     last,
		Body:         body,
		Direction:    g.snake.LastDirection,
		Food:         food,
		Walls:        g.collisionMgr.Walls(),
		Ticks:        g.ticks,
		TickInterval: g.clock.Interval(),
		SessionID:    g.sessionID,
		Level:        g.level.Name,
		Collision:    g.collision,
	}
}
