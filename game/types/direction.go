package types

import "fmt"

// Direction is a cardinal movement direction.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Directions lists every valid direction in clockwise order.
var Directions = [4]Direction{UP, RIGHT, DOWN, LEFT}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= UP && d <= LEFT
}

// Delta returns the unit movement vector of d.
// A direction outside the four cardinals is a bug in input filtering,
// never user input, so it panics.
func (d Direction) Delta() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("types: direction %d has no delta", int(d)))
}

// Reverse returns the opposite direction. NONE reverses to NONE.
func (d Direction) Reverse() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "Up"
	case RIGHT:
		return "Right"
	case DOWN:
		return "Down"
	case LEFT:
		return "Left"
	default:
		return "None"
	}
}
