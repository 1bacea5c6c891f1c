package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// State is the agent's view of the board around the head. Dangers are
// indexed like types.Directions.
type State struct {
	FoodDir      [2]int
	FoodDistance int
	Dangers      [4]bool
}

// Observe builds a State from a snapshot. Only rendered walls are known,
// so invisible walls are learnt the hard way.
func Observe(snap game.Snapshot) State {
	head := snap.Head()
	grid := snap.Grid

	var s State
	s.FoodDistance = -1
	for _, f := range snap.Food {
		d := manhattanDistance(head, f.Position, grid.Width, grid.Height)
		if s.FoodDistance < 0 || d < s.FoodDistance {
			s.FoodDistance = d
			s.FoodDir = [2]int{
				wrapSign(f.Position.X-head.X, grid.Width),
				wrapSign(f.Position.Y-head.Y, grid.Height),
			}
		}
	}

	blocked := make(map[types.Point]bool, len(snap.Walls)+len(snap.Body))
	for _, w := range snap.Walls {
		blocked[w] = true
	}
	for _, b := range snap.Body {
		blocked[b] = true
	}
	for i, d := range types.Directions {
		next := grid.Wrap(head.Add(d.Delta()))
		s.Dangers[i] = blocked[next] || d == snap.Direction.Reverse()
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance is the Manhattan distance on a wrapping grid.
func manhattanDistance(p1, p2 types.Point, width, height int) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if dx > width/2 {
		dx = width - dx
	}
	if dy > height/2 {
		dy = height - dy
	}
	return dx + dy
}

// wrapSign is the sign of the shortest step along one wrapping axis.
func wrapSign(delta, extent int) int {
	if abs(delta) > extent/2 {
		delta = -delta
	}
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
