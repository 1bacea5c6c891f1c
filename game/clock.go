package game

// Clock turns variable frame time into fixed ticks. The interval only
// shrinks, and never below the floor.
type Clock struct {
	initial     float64
	interval    float64
	decrement   float64
	minInterval float64
	accumulator float64
}

func NewClock(interval, decrement, minInterval float64) *Clock {
	c := &Clock{
		initial:     interval,
		decrement:   decrement,
		minInterval: minInterval,
	}
	c.Reset()
	return c
}

// Reset restores the starting interval. The accumulator starts full so
// the first frame after a (re)start ticks at once.
func (c *Clock) Reset() {
	c.interval = c.initial
	c.accumulator = c.initial
}

// Add banks elapsed frame time. Negative values are ignored.
func (c *Clock) Add(dt float64) {
	if dt > 0 {
		c.accumulator += dt
	}
}

// Next consumes one interval from the accumulator if it holds more than one.
func (c *Clock) Next() bool {
	if c.accumulator > c.interval {
		c.accumulator -= c.interval
		return true
	}
	return false
}

// SpeedUp shortens the interval by one decrement, clamped to the floor.
func (c *Clock) SpeedUp() {
	c.interval -= c.decrement
	if c.interval < c.minInterval {
		c.interval = c.minInterval
	}
}

func (c *Clock) Interval() float64 {
	return c.interval
}

func (c *Clock) Accumulated() float64 {
	return c.accumulator
}
