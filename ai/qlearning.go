package ai

import (
	"math"

	"snake-arcade/game/types"
)

// QTable maps an observed state to the value of each direction.
type QTable map[State]map[types.Direction]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng types.Rand
}

func NewQLearning(rng types.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

func (q *QLearning) values(s State) map[types.Direction]float64 {
	v, ok := q.QTable[s]
	if !ok {
		v = make(map[types.Direction]float64, len(types.Directions))
		for _, d := range types.Directions {
			v[d] = 0
		}
		q.QTable[s] = v
	}
	return v
}

// GetAction is epsilon-greedy over the safe directions. When every
// direction is dangerous it falls back to all of them.
func (q *QLearning) GetAction(s State) types.Direction {
	candidates := make([]types.Direction, 0, len(types.Directions))
	for i, d := range types.Directions {
		if !s.Dangers[i] {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		candidates = types.Directions[:]
	}

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return candidates[q.rng.Intn(len(candidates))]
	}

	values := q.values(s)
	best := candidates[0]
	bestValue := math.Inf(-1)
	for _, d := range candidates {
		if values[d] > bestValue {
			bestValue = values[d]
			best = d
		}
	}
	return best
}

// Update applies one Q-learning step for taking action in s and landing in next.
func (q *QLearning) Update(s State, action types.Direction, next State, reward float64) {
	maxNextQ := math.Inf(-1)
	for _, v := range q.values(next) {
		if v > maxNextQ {
			maxNextQ = v
		}
	}

	values := q.values(s)
	values[action] += q.LearningRate * (reward + q.Discount*maxNextQ - values[action])
	q.TotalReward += reward
}

// Terminal applies the update for an action that ended the game.
func (q *QLearning) Terminal(s State, action types.Direction, reward float64) {
	values := q.values(s)
	values[action] += q.LearningRate * (reward - values[action])
	q.TotalReward += reward
	q.GamesPlayed++
}

// Reward scores a transition: eating beats closing in, closing in beats
// drifting away.
func Reward(prev, next State, scored bool) float64 {
	if scored {
		return 1.0
	}
	if prev.FoodDistance < 0 || next.FoodDistance < 0 {
		return 0
	}
	switch change := next.FoodDistance - prev.FoodDistance; {
	case change < 0:
		return 0.5
	case change > 0:
		return -0.3
	default:
		return 0
	}
}
