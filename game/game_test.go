package game

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"

	"snake-arcade/game/level"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// fixedRand always picks the first option and fails every spawn roll.
type fixedRand struct{}

func (fixedRand) Intn(n int) int    { return 0 }
func (fixedRand) Float64() float64 { return 0.999 }

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Foods = []manager.FoodSpec{
		{Kind: manager.Apple, Score: 10, Lifetime: 45, Probability: 0},
		{Kind: manager.Candy, Score: 50, Lifetime: 15, Probability: 0},
	}
	return cfg
}

func openLevel(walls ...types.Point) level.Level {
	return level.Level{
		Name:      "open",
		Walls:     walls,
		Body:      []types.Point{{2, 3}, {2, 2}, {2, 1}},
		Direction: types.DOWN,
	}
}

func newTestGame(t *testing.T, lvl level.Level) (*Game, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := New(quietConfig(), fixedRand{}, &out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.reset(lvl)
	return g, &out
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewStartsPlaying(t *testing.T) {
	g, err := New(DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snap := g.Snapshot()
	if snap.State != Playing || snap.Score != 0 || len(snap.Food) != 0 {
		t.Errorf("unexpected start snapshot %+v", snap)
	}
	if snap.SessionID == "" {
		t.Error("session id missing")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTickInterval = 0
	if _, err := New(cfg, fixedRand{}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestTickTranslates(t *testing.T) {
	g, _ := newTestGame(t, openLevel())

	if n := g.Advance(0.001); n != 1 {
		t.Fatalf("expected 1 tick, got %d", n)
	}
	want := []types.Point{{2, 4}, {2, 3}, {2, 2}}
	if got := g.Snapshot().Body; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTickEatsFood(t *testing.T) {
	g, _ := newTestGame(t, openLevel())
	if !g.foodMgr.AddFood(manager.Apple, types.Point{2, 4}, g.snake) {
		t.Fatal("AddFood failed")
	}
	before := g.Snapshot()

	if !g.tick() {
		t.Fatal("tick ended the game")
	}

	after := g.Snapshot()
	if after.Score != before.Score+10 {
		t.Errorf("score: got %d, want %d", after.Score, before.Score+10)
	}
	if len(after.Body) != len(before.Body)+1 {
		t.Errorf("length: got %d, want %d", len(after.Body), len(before.Body)+1)
	}
	if len(after.Food) != 0 {
		t.Errorf("apple should be consumed, got %v", after.Food)
	}
	if d := before.TickInterval - after.TickInterval; math.Abs(d-0.002) > 1e-12 {
		t.Errorf("interval should drop by 0.002, dropped %v", d)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, out := newTestGame(t, openLevel(types.Point{2, 4}))
	g.foodMgr.AddFood(manager.Apple, types.Point{9, 9}, g.snake)

	g.Advance(0.001)
	snap := g.Snapshot()
	if snap.State != GameOver {
		t.Fatalf("expected GameOver, got %s", snap.State)
	}
	if snap.Score != 0 || snap.Collision != manager.WallCollision {
		t.Errorf("score %d collision %s", snap.Score, snap.Collision)
	}
	if !strings.Contains(out.String(), "### Game Over ###") || !strings.Contains(out.String(), "Score: 0") {
		t.Errorf("unexpected summary %q", out.String())
	}

	if len(snap.Food) != 1 {
		t.Fatalf("setup: expected the apple to stay on the board, got %v", snap.Food)
	}

	if n := g.Advance(10); n != 0 {
		t.Errorf("no ticks should run after game over, ran %d", n)
	}
	g.SubmitInput(InputLeft)
	g.SubmitInput(InputPause)
	got := g.Snapshot()
	if got.State != GameOver || got.Score != snap.Score {
		t.Errorf("state %s score %d after game over", got.State, got.Score)
	}
	if !reflect.DeepEqual(got.Body, snap.Body) || !reflect.DeepEqual(got.Food, snap.Food) {
		t.Errorf("body or food changed after game over: %v %v", got.Body, got.Food)
	}
	if len(g.snake.Pending()) != 0 {
		t.Errorf("directions queued after game over: %v", g.snake.Pending())
	}
	if g.Stats().GamesPlayed() != 1 {
		t.Errorf("expected one recorded game, got %d", g.Stats().GamesPlayed())
	}
	rec, _ := g.Stats().LastGame()
	if got.LastGame != rec.Duration() || got.LastGame < 0 {
		t.Errorf("last game duration %v, record says %v", got.LastGame, rec.Duration())
	}
}

func TestInvisibleWallCollision(t *testing.T) {
	lvl := openLevel()
	lvl.InvisibleWalls = []types.Point{{2, 4}}
	g, _ := newTestGame(t, lvl)

	g.tick()
	if g.State() != GameOver {
		t.Errorf("expected GameOver on invisible wall, got %s", g.State())
	}
	for _, w := range g.Snapshot().Walls {
		if w == (types.Point{2, 4}) {
			t.Error("invisible wall exposed in snapshot")
		}
	}
}

func TestSelfCollision(t *testing.T) {
	lvl := level.Level{
		Name:      "hook",
		Body:      []types.Point{{2, 2}, {2, 3}, {3, 3}, {3, 2}},
		Direction: types.UP,
	}
	g, _ := newTestGame(t, lvl)

	g.SubmitInput(InputRight) // onto the tail cell
	g.tick()
	if g.State() != GameOver || g.Snapshot().Collision != manager.SelfCollision {
		t.Errorf("expected self collision, got %s / %s", g.State(), g.Snapshot().Collision)
	}
}

func TestWrapAroundIsNotCollision(t *testing.T) {
	lvl := level.Level{
		Name:      "edge",
		Body:      []types.Point{{14, 7}, {13, 7}},
		Direction: types.RIGHT,
	}
	g, _ := newTestGame(t, lvl)

	g.tick()
	if g.State() != Playing {
		t.Fatalf("wrapping should not end the game")
	}
	if head := g.Snapshot().Head(); head != (types.Point{0, 7}) {
		t.Errorf("head: got %v, want (0,7)", head)
	}
}

func TestCollisionStopsRemainingTicks(t *testing.T) {
	g, _ := newTestGame(t, openLevel(types.Point{2, 5}))

	if n := g.Advance(1.0); n != 2 {
		t.Errorf("expected the second tick to end the frame, ran %d", n)
	}
	if head := g.Snapshot().Head(); head != (types.Point{2, 4}) {
		t.Errorf("head moved past the collision: %v", head)
	}
}

func TestAdvanceRunsSeveralTicks(t *testing.T) {
	g, _ := newTestGame(t, openLevel())
	g.Advance(0.001)
	if n := g.Advance(0.31); n != 2 {
		t.Errorf("expected 2 ticks, got %d", n)
	}
	if n := g.Advance(0.01); n != 0 {
		t.Errorf("expected no tick for a short frame, got %d", n)
	}
}

func TestPauseToggle(t *testing.T) {
	g, _ := newTestGame(t, openLevel())

	g.SubmitInput(InputPause)
	if g.State() != Paused {
		t.Fatalf("expected Paused, got %s", g.State())
	}
	if n := g.Advance(5); n != 0 {
		t.Errorf("paused game ticked %d times", n)
	}
	g.SubmitInput(InputRight)
	g.SubmitInput(InputUp) // reverse of Down, still filtered
	if got := g.snake.Pending(); !reflect.DeepEqual(got, []types.Direction{types.RIGHT}) {
		t.Errorf("pending while paused: got %v, want [Right]", got)
	}
	if head := g.Snapshot().Head(); head != (types.Point{2, 3}) {
		t.Errorf("paused snake moved to %v", head)
	}

	g.SubmitInput(InputPause)
	if g.State() != Playing {
		t.Fatalf("expected Playing, got %s", g.State())
	}
	if n := g.Advance(0.001); n != 1 {
		t.Errorf("resumed game should tick, got %d", n)
	}
	if head := g.Snapshot().Head(); head != (types.Point{3, 3}) {
		t.Errorf("direction pressed while paused not applied: head %v", head)
	}
}

func TestRestartFromPaused(t *testing.T) {
	g, _ := newTestGame(t, openLevel())
	g.foodMgr.AddFood(manager.Apple, types.Point{2, 4}, g.snake)
	g.tick()
	g.SubmitInput(InputPause)
	if g.State() != Paused || g.Score() != 10 {
		t.Fatalf("setup: state %s score %d", g.State(), g.Score())
	}
	oldSession := g.Snapshot().SessionID

	g.SubmitInput(InputRestart)

	snap := g.Snapshot()
	want := level.Choose(fixedRand{})
	if snap.State != Playing || snap.Score != 0 || snap.Ticks != 0 {
		t.Errorf("state %s score %d ticks %d", snap.State, snap.Score, snap.Ticks)
	}
	if !reflect.DeepEqual(snap.Body, want.Body) || snap.Level != want.Name {
		t.Errorf("body %v level %s, want %v %s", snap.Body, snap.Level, want.Body, want.Name)
	}
	if snap.TickInterval != g.cfg.TickInterval || snap.SessionID == oldSession {
		t.Errorf("interval %v session %s", snap.TickInterval, snap.SessionID)
	}
	if snap.Games != 0 {
		t.Errorf("a paused game is not a finished one, games %d", snap.Games)
	}
	if n := g.Advance(0.001); n != 1 {
		t.Errorf("restarted game should tick at once, got %d", n)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	g, _ := newTestGame(t, openLevel(types.Point{2, 5}))
	g.foodMgr.AddFood(manager.Apple, types.Point{2, 4}, g.snake)
	g.Advance(1.0)
	if g.State() != GameOver || g.Score() != 10 {
		t.Fatalf("setup: state %s score %d", g.State(), g.Score())
	}
	oldSession := g.Snapshot().SessionID

	g.SubmitInput(InputRestart)

	snap := g.Snapshot()
	want := level.Choose(fixedRand{})
	if snap.State != Playing || snap.Score != 0 {
		t.Errorf("state %s score %d", snap.State, snap.Score)
	}
	if !reflect.DeepEqual(snap.Body, want.Body) || snap.Direction != want.Direction {
		t.Errorf("body %v dir %s, want %v %s", snap.Body, snap.Direction, want.Body, want.Direction)
	}
	if len(snap.Food) != 0 || snap.Ticks != 0 {
		t.Errorf("food %v ticks %d", snap.Food, snap.Ticks)
	}
	if snap.TickInterval != g.cfg.TickInterval {
		t.Errorf("interval not reset: %v", snap.TickInterval)
	}
	if snap.Level != want.Name || snap.SessionID == oldSession {
		t.Errorf("level %s session %s", snap.Level, snap.SessionID)
	}
	if snap.HighScore != 10 {
		t.Errorf("high score should survive restart, got %d", snap.HighScore)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t, openLevel(types.Point{9, 9}))
	snap := g.Snapshot()
	snap.Body[0] = types.Point{9, 9}
	snap.Walls[0] = types.Point{0, 0}

	again := g.Snapshot()
	if again.Body[0] != (types.Point{2, 3}) || again.Walls[0] != (types.Point{9, 9}) {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestFoodSpawnsDuringPlay(t *testing.T) {
	cfg := DefaultConfig()
	g, err := New(cfg, NewRand(42), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.tick()
	apples := 0
	for _, f := range g.Snapshot().Food {
		if f.Kind == manager.Apple {
			apples++
		}
	}
	if apples != 1 {
		t.Errorf("an apple should spawn on the first tick, got %d", apples)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"board larger than layouts", func(c *Config) { c.Width, c.Height = 20, 20 }},
		{"non-square board", func(c *Config) { c.Height = 16 }},
		{"board too small for levels", func(c *Config) { c.Width, c.Height = 10, 10 }},
		{"negative interval", func(c *Config) { c.TickInterval = -1 }},
		{"floor above interval", func(c *Config) { c.MinTickInterval = 1 }},
		{"negative decrement", func(c *Config) { c.TickDecrement = -0.1 }},
		{"no queue", func(c *Config) { c.QueueDepth = 0 }},
		{"no foods", func(c *Config) { c.Foods = nil }},
		{"duplicate food", func(c *Config) { c.Foods = append(c.Foods, c.Foods[0]) }},
		{"bad probability", func(c *Config) { c.Foods[0].Probability = 101 }},
		{"bad lifetime", func(c *Config) { c.Foods[1].Lifetime = 0 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestInputFor(t *testing.T) {
	for _, d := range types.Directions {
		if got := InputFor(d).Direction(); got != d {
			t.Errorf("%s round-trips to %s", d, got)
		}
	}
	if InputFor(types.NONE) != InputNone {
		t.Error("NONE should map to InputNone")
	}
}
