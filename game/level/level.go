package level

import (
	"errors"
	"fmt"

	"snake-arcade/game/types"
)

var (
	ErrLevelBounds  = errors.New("level cell outside the board")
	ErrLevelOverlap = errors.New("level body overlaps a wall")
)

// Level is an immutable board layout. Callers must not mutate the slices.
type Level struct {
	Name           string
	Walls          []types.Point
	InvisibleWalls []types.Point
	Body           []types.Point // head first
	Direction      types.Direction
}

// All returns every built-in layout. Adding a layout only means adding it here.
func All() []Level {
	return []Level{crossroads(), diagonals()}
}

// Choose picks a built-in layout uniformly at random.
func Choose(rng types.Rand) Level {
	levels := All()
	return levels[rng.Intn(len(levels))]
}

// Validate checks that every cell fits the grid and that the initial body
// stays clear of walls, invisible walls and itself.
func (l Level) Validate(grid types.Grid) error {
	blocked := make(map[types.Point]struct{}, len(l.Walls)+len(l.InvisibleWalls))
	for _, set := range [][]types.Point{l.Walls, l.InvisibleWalls} {
		for _, p := range set {
			if !grid.Contains(p) {
				return fmt.Errorf("%s: wall %v: %w", l.Name, p, ErrLevelBounds)
			}
			blocked[p] = struct{}{}
		}
	}

	if len(l.Body) == 0 {
		return fmt.Errorf("%s: empty body", l.Name)
	}
	if !l.Direction.Valid() {
		return fmt.Errorf("%s: invalid start direction %v", l.Name, l.Direction)
	}

	seen := make(map[types.Point]struct{}, len(l.Body))
	for _, p := range l.Body {
		if !grid.Contains(p) {
			return fmt.Errorf("%s: body %v: %w", l.Name, p, ErrLevelBounds)
		}
		if _, ok := blocked[p]; ok {
			return fmt.Errorf("%s: body %v: %w", l.Name, p, ErrLevelOverlap)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%s: body repeats %v", l.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// crossroads is a walled frame with gaps at the corners and mid-edges that
// are closed by invisible walls, plus a pillar in the middle.
func crossroads() Level {
	walls := []types.Point{
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {8, 0}, {9, 0}, {10, 0}, {11, 0}, {12, 0}, {13, 0},
		{14, 1}, {14, 2}, {14, 3}, {14, 4}, {14, 5}, {14, 6}, {14, 8}, {14, 9}, {14, 10}, {14, 11}, {14, 12}, {14, 13},
		{1, 14}, {2, 14}, {3, 14}, {4, 14}, {5, 14}, {6, 14}, {8, 14}, {9, 14}, {10, 14}, {11, 14}, {12, 14}, {13, 14},
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 8}, {0, 9}, {0, 10}, {0, 11}, {0, 12}, {0, 13},
		{7, 7},
	}
	invisible := []types.Point{
		{0, 0}, {7, 0}, {14, 0}, {14, 7}, {14, 14}, {7, 14}, {0, 14}, {0, 7},
	}

	return Level{
		Name:           "crossroads",
		Walls:          walls,
		InvisibleWalls: invisible,
		Body:           []types.Point{{2, 3}, {2, 2}, {2, 1}},
		Direction:      types.DOWN,
	}
}

// diagonals is an open board crossed by two broken diagonals with
// pillars at the middle of each edge.
func diagonals() Level {
	walls := []types.Point{
		{2, 2}, {3, 3}, {4, 4}, {5, 5}, {7, 7}, {9, 9}, {10, 10}, {11, 11}, {12, 12},
		{12, 2}, {11, 3}, {10, 4}, {9, 5}, {5, 9}, {4, 10}, {3, 11}, {2, 12},
		{0, 7}, {7, 0}, {14, 7}, {7, 14},
	}

	return Level{
		Name:      "diagonals",
		Walls:     walls,
		Body:      []types.Point{{0, 0}, {1, 0}, {2, 0}},
		Direction: types.DOWN,
	}
}
