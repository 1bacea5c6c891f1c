package manager

import "time"

// maxHistory bounds the in-session score history.
const maxHistory = 200

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string
	Level     string
	Score     int
	Ticks     int
	StartTime time.Time
	EndTime   time.Time
}

// Duration is the wall-clock length of the game.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps score statistics for the running process only.
// Nothing is written to disk.
type StateManager struct {
	highScore    int
	gamesPlayed  int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0),
	}
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// AddToHistory records a finished game and updates the high score.
func (sm *StateManager) AddToHistory(rec GameRecord) {
	sm.UpdateScore(rec.Score)
	sm.gamesPlayed++
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)
}

// LastGame returns the most recent finished game, if any.
func (sm *StateManager) LastGame() (GameRecord, bool) {
	if len(sm.scoreHistory) == 0 {
		return GameRecord{}, false
	}
	return sm.scoreHistory[len(sm.scoreHistory)-1], true
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// GetAverageScore averages the retained history; 0 with no games.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.scoreHistory {
		total += r.Score
	}
	return float64(total) / float64(len(sm.scoreHistory))
}
