package types

// Point is a cell on the board.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Board constants. Level layouts hard-code wall coordinates against these.
const (
	BoardWidth  = 15
	BoardHeight = 15
)

// DefaultGrid returns the grid every built-in level is authored for.
func DefaultGrid() Grid {
	return Grid{Width: BoardWidth, Height: BoardHeight}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps a point one step off the board to the opposite edge.
// Coordinates >= extent become 0 and coordinates < 0 become extent-1.
func (g Grid) Wrap(p Point) Point {
	if p.X >= g.Width {
		p.X = 0
	}
	if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.Y >= g.Height {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - 1
	}
	return p
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Rand is the random source consumed by level selection, food spawning
// and the autopilot. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
