package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/level"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
)

// State is the top-level game phase.
type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is an already classified key event.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputPause
	InputRestart
)

// Direction maps a directional input to its direction, NONE otherwise.
func (in Input) Direction() types.Direction {
	switch in {
	case InputUp:
		return types.UP
	case InputDown:
		return types.DOWN
	case InputLeft:
		return types.LEFT
	case InputRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// Game owns the whole simulation. It is not safe for concurrent use: one
// host loop drives it and renderers read Snapshot copies.
type Game struct {
	cfg  Config
	grid types.Grid
	rng  types.Rand
	out  io.Writer

	level        level.Level
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	clock        *Clock

	state     State
	score     int
	ticks     int
	collision manager.CollisionType
	sessionID string
	startTime time.Time
}

// New validates cfg and starts a game on a randomly chosen level. A nil
// rng is replaced by one seeded from cfg.Seed. The game-over summary is
// written to out; a nil out discards it.
func New(cfg Config, rng types.Rand, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	if out == nil {
		out = io.Discard
	}
	g := &Game{
		cfg:      cfg,
		grid:     cfg.Grid(),
		rng:      rng,
		out:      out,
		stateMgr: manager.NewStateManager(),
		clock:    NewClock(cfg.TickInterval, cfg.TickDecrement, cfg.MinTickInterval),
	}
	g.Restart()
	return g, nil
}

// Restart picks a fresh level and resets every piece of per-game state.
func (g *Game) Restart() {
	g.reset(level.Choose(g.rng))
}

func (g *Game) reset(lvl level.Level) {
	g.level = lvl
	g.snake = entity.NewSnake(g.grid, lvl.Body, lvl.Direction, g.cfg.QueueDepth)
	g.collisionMgr = manager.NewCollisionManager(g.grid, lvl)
	g.foodMgr = manager.NewFoodManager(g.grid, g.cfg.Foods, g.collisionMgr, g.rng)
	g.clock.Reset()
	g.state = Playing
	g.score = 0
	g.ticks = 0
	g.collision = manager.NoCollision
	g.sessionID = uuid.New().String()
	g.startTime = time.Now()
	log.Printf("session %s: start on level %s", g.sessionID, lvl.Name)
}

// SubmitInput applies one classified input. Directions are queued while
// playing or paused and dropped after game over; unknown inputs are no-ops.
func (g *Game) SubmitInput(in Input) {
	switch in {
	case InputRestart:
		g.Restart()
	case InputPause:
		switch g.state {
		case Playing:
			g.state = Paused
			log.Printf("session %s: paused", g.sessionID)
		case Paused:
			g.state = Playing
			log.Printf("session %s: resumed", g.sessionID)
		}
	case InputUp, InputDown, InputLeft, InputRight:
		if g.state != GameOver {
			g.snake.QueueDirection(in.Direction())
		}
	}
}

// Advance feeds dt seconds of frame time and runs as many ticks as the
// accumulator allows. It returns the number of ticks run.
func (g *Game) Advance(dt float64) int {
	if g.state != Playing {
		return 0
	}
	g.clock.Add(dt)
	n := 0
	for g.clock.Next() {
		n++
		if !g.tick() {
			break
		}
	}
	return n
}

// tick runs one simulation step and reports whether the game goes on.
func (g *Game) tick() bool {
	newHead := g.snake.NextHead()

	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != manager.NoCollision {
		g.collision = c
		g.endGame()
		return false
	}

	if food, ok := g.foodMgr.TakeAt(newHead); ok {
		g.score += food.Score
		g.snake.Step(true)
		g.clock.SpeedUp()
	} else {
		g.snake.Step(false)
	}

	g.foodMgr.Update(g.snake)
	g.ticks++
	return true
}

func (g *Game) endGame() {
	g.state = GameOver
	rec := manager.GameRecord{
		SessionID: g.sessionID,
		Level:     g.level.Name,
		Score:     g.score,
		Ticks:     g.ticks,
		StartTime: g.startTime,
		EndTime:   time.Now(),
	}
	g.stateMgr.AddToHistory(rec)
	log.Printf("session %s: game over (%s collision), score %d after %d ticks in %s",
		g.sessionID, g.collision, g.score, g.ticks, rec.Duration().Round(time.Millisecond))
	fmt.Fprintf(g.out, "### Game Over ###\nScore: %d\nPress R to restart\nPress Esc to quit\n", g.score)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Config() Config {
	return g.cfg
}

// Stats exposes the in-session score statistics.
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// InputFor maps a direction to its input, InputNone for NONE.
func InputFor(d types.Direction) Input {
	switch d {
	case types.UP:
		return InputUp
	case types.DOWN:
		return InputDown
	case types.LEFT:
		return InputLeft
	case types.RIGHT:
		return InputRight
	default:
		return InputNone
	}
}
