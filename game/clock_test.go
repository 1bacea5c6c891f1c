package game

import (
	"math"
	"testing"
)

func TestClockFirstFrameTicks(t *testing.T) {
	c := NewClock(0.15, 0.002, 0.05)
	if c.Next() {
		t.Fatal("a full accumulator alone must not tick")
	}
	c.Add(0.001)
	if !c.Next() {
		t.Fatal("expected a tick once the accumulator exceeds the interval")
	}
	if c.Next() {
		t.Error("only one tick should be available")
	}
}

func TestClockMultipleTicksPerFrame(t *testing.T) {
	c := NewClock(0.15, 0.002, 0.05)
	c.Add(0.01)
	c.Next()

	c.Add(0.5)
	n := 0
	for c.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("expected 3 ticks, got %d", n)
	}
}

func TestClockIgnoresNegativeTime(t *testing.T) {
	c := NewClock(0.15, 0.002, 0.05)
	c.Add(-1)
	if c.Accumulated() != 0.15 {
		t.Errorf("accumulator changed: %v", c.Accumulated())
	}
}

func TestClockSpeedUp(t *testing.T) {
	c := NewClock(0.15, 0.002, 0.05)
	before := c.Interval()
	c.SpeedUp()
	if d := before - c.Interval(); math.Abs(d-0.002) > 1e-12 {
		t.Errorf("expected a 0.002 decrement, got %v", d)
	}

	for i := 0; i < 1000; i++ {
		c.SpeedUp()
	}
	if c.Interval() != 0.05 {
		t.Errorf("interval should clamp to the floor, got %v", c.Interval())
	}

	c.Reset()
	if c.Interval() != 0.15 || c.Accumulated() != 0.15 {
		t.Errorf("reset: interval %v accumulator %v", c.Interval(), c.Accumulated())
	}
}
