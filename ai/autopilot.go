package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// deathPenalty is the reward for the move that ended a game.
const deathPenalty = -1.0

// Autopilot plays from snapshots only, emitting at most one direction per
// simulation tick. It keeps learning across restarts.
type Autopilot struct {
	Agent *QLearning

	lastTick   int
	lastScore  int
	lastState  State
	lastAction types.Direction
	acting     bool
}

func NewAutopilot(rng types.Rand) *Autopilot {
	return &Autopilot{
		Agent:    NewQLearning(rng),
		lastTick: -1,
	}
}

// Next returns the input to submit for snap, or InputNone when there is
// nothing new to decide. A finished game is restarted right away.
func (a *Autopilot) Next(snap game.Snapshot) game.Input {
	switch snap.State {
	case game.GameOver:
		if a.acting {
			a.Agent.Terminal(a.lastState, a.lastAction, deathPenalty)
			a.acting = false
		}
		a.lastTick = -1
		return game.InputRestart
	case game.Paused:
		return game.InputNone
	}

	if snap.Ticks == a.lastTick {
		return game.InputNone
	}
	if snap.Ticks < a.lastTick {
		// restarted mid-game
		a.acting = false
	}

	s := Observe(snap)
	if a.acting {
		a.Agent.Update(a.lastState, a.lastAction, s, Reward(a.lastState, s, snap.Score > a.lastScore))
	}

	action := a.Agent.GetAction(s)
	a.lastTick = snap.Ticks
	a.lastScore = snap.Score
	a.lastState = s
	a.lastAction = action
	a.acting = true

	if action == snap.Direction {
		return game.InputNone
	}
	return game.InputFor(action)
}
