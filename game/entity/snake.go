package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player-controlled body. Body is ordered head first.
type Snake struct {
	Body          []types.Point
	LastDirection types.Direction

	grid       types.Grid
	pending    []types.Direction
	maxPending int
}

// NewSnake copies body so the level layout stays untouched.
// maxPending bounds the direction queue; values below 1 are treated as 1.
func NewSnake(grid types.Grid, body []types.Point, dir types.Direction, maxPending int) *Snake {
	if maxPending < 1 {
		maxPending = 1
	}
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:          b,
		LastDirection: dir,
		grid:          grid,
		pending:       make([]types.Direction, 0, maxPending),
		maxPending:    maxPending,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Pending returns a copy of the queued directions, oldest first.
func (s *Snake) Pending() []types.Direction {
	out := make([]types.Direction, len(s.pending))
	copy(out, s.pending)
	return out
}

// QueueDirection buffers dir for a later tick. It reports whether the input
// was kept. Reversals of LastDirection, or of the direction queued just
// before, are dropped since they would fold the head onto the neck.
// A full queue coalesces: the newest input replaces the last slot.
func (s *Snake) QueueDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.LastDirection.Reverse() {
		return false
	}

	n := len(s.pending)
	slot := n
	if n >= s.maxPending {
		slot = n - 1
	}

	prev := s.LastDirection
	if slot > 0 {
		prev = s.pending[slot-1]
	}
	if dir == prev.Reverse() {
		return false
	}
	if slot < n {
		s.pending[slot] = dir
		return true
	}
	if dir == prev {
		return false
	}
	s.pending = append(s.pending, dir)
	return true
}

// nextDirection is the direction the next Step will use.
func (s *Snake) nextDirection() types.Direction {
	if len(s.pending) > 0 {
		return s.pending[0]
	}
	return s.LastDirection
}

// NextHead returns where the head lands on the next Step without moving.
func (s *Snake) NextHead() types.Point {
	return s.grid.Wrap(s.GetHead().Add(s.nextDirection().Delta()))
}

// Step consumes one queued direction (or repeats the last one) and moves
// the head. Without grow the tail is dropped, with grow it is kept.
func (s *Snake) Step(grow bool) types.Point {
	dir := s.nextDirection()
	if n := len(s.pending); n > 0 {
		copy(s.pending, s.pending[1:])
		s.pending = s.pending[:n-1]
	}

	newHead := s.grid.Wrap(s.GetHead().Add(dir.Delta()))
	if grow {
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	s.LastDirection = dir
	return newHead
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
