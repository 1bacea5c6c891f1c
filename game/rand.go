package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a PCG backed source. Seed 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
