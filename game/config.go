package game

import (
	"errors"
	"fmt"

	"snake-arcade/game/level"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config collects every tunable of the simulation core.
type Config struct {
	Width  int
	Height int

	TickInterval    float64 // seconds per tick at score 0
	TickDecrement   float64 // seconds removed per food eaten
	MinTickInterval float64 // floor for the speed ramp

	QueueDepth  int // pending direction slots
	BlinkWindow int // ticks before expiry a food blinks
	Foods       []manager.FoodSpec

	Seed uint64 // 0 picks a time based seed
}

func DefaultConfig() Config {
	return Config{
		Width:           types.BoardWidth,
		Height:          types.BoardHeight,
		TickInterval:    0.15,
		TickDecrement:   0.002,
		MinTickInterval: 0.05,
		QueueDepth:      2,
		BlinkWindow:     manager.BlinkWindow,
		Foods:           manager.DefaultFoods(),
	}
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// Validate rejects configs the core cannot run. Every built-in level must
// fit the configured board.
func (c Config) Validate() error {
	// Layouts hard-code wall coordinates for one board size.
	if c.Width != types.BoardWidth || c.Height != types.BoardHeight {
		return fmt.Errorf("%w: board %dx%d, layouts need %dx%d",
			ErrInvalidConfig, c.Width, c.Height, types.BoardWidth, types.BoardHeight)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.MinTickInterval <= 0 || c.MinTickInterval > c.TickInterval {
		return fmt.Errorf("%w: min tick interval %v must be in (0, %v]", ErrInvalidConfig, c.MinTickInterval, c.TickInterval)
	}
	if c.TickDecrement < 0 {
		return fmt.Errorf("%w: negative tick decrement", ErrInvalidConfig)
	}
	if c.QueueDepth < 1 {
		return fmt.Errorf("%w: queue depth %d", ErrInvalidConfig, c.QueueDepth)
	}
	if c.BlinkWindow < 0 {
		return fmt.Errorf("%w: blink window %d", ErrInvalidConfig, c.BlinkWindow)
	}
	if len(c.Foods) == 0 {
		return fmt.Errorf("%w: no food kinds", ErrInvalidConfig)
	}

	seen := make(map[manager.FoodKind]bool, len(c.Foods))
	for _, f := range c.Foods {
		if seen[f.Kind] {
			return fmt.Errorf("%w: food %s listed twice", ErrInvalidConfig, f.Kind)
		}
		seen[f.Kind] = true
		if f.Probability < 0 || f.Probability > 100 {
			return fmt.Errorf("%w: food %s probability %v", ErrInvalidConfig, f.Kind, f.Probability)
		}
		if f.Lifetime <= 0 || f.Score < 0 {
			return fmt.Errorf("%w: food %s lifetime %d score %d", ErrInvalidConfig, f.Kind, f.Lifetime, f.Score)
		}
	}

	for _, l := range level.All() {
		if err := l.Validate(c.Grid()); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
