package tui

import (
	"context"
	"log"
	"time"

	"snake-arcade/ai"
	"snake-arcade/game"

	"github.com/gdamore/tcell/v2"
)

// FrameRate is how often the host advances and redraws.
const FrameRate = 60

// Host drives a game from a terminal. Only the Run goroutine touches the
// game; the event pump just forwards tcell events.
type Host struct {
	screen    tcell.Screen
	game      *game.Game
	pilot     *ai.Autopilot
	autopilot bool
}

// NewHost wires a screen to a game. pilot may be nil to disable autoplay.
func NewHost(screen tcell.Screen, g *game.Game, pilot *ai.Autopilot, autopilot bool) *Host {
	return &Host{
		screen:    screen,
		game:      g,
		pilot:     pilot,
		autopilot: autopilot && pilot != nil,
	}
}

// Run blocks until the player quits or ctx is cancelled. The screen must
// already be initialised; the caller finalises it.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
			case *tcell.EventKey:
				if h.handleKey(e) {
					return nil
				}
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			h.frame(dt)
		}
	}
}

// handleKey reports whether the player asked to quit.
func (h *Host) handleKey(ev *tcell.EventKey) bool {
	in, cmd := Classify(ev)
	switch cmd {
	case CmdQuit:
		return true
	case CmdAutopilot:
		if h.pilot != nil {
			h.autopilot = !h.autopilot
			log.Printf("tui: autopilot %v", h.autopilot)
		}
	}
	if in != game.InputNone {
		h.game.SubmitInput(in)
	}
	return false
}

func (h *Host) frame(dt float64) {
	if h.autopilot {
		if in := h.pilot.Next(h.game.Snapshot()); in != game.InputNone {
			h.game.SubmitInput(in)
		}
	}
	h.game.Advance(dt)
	Draw(h.screen, h.game.Snapshot(), h.autopilot)
}
