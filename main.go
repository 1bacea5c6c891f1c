package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"time"

	"snake-arcade/ai"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/tui"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
)

const banner = "R => Restart\nP => Pause\nTab => Autopilot\nEsc => Quit"

type options struct {
	cfg       game.Config
	term      bool
	autopilot bool
	debug     bool
}

func parseFlags(args []string) (options, error) {
	def := game.DefaultConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	speed := fs.Int("speed", int(def.TickInterval*1000), "Initial tick interval in milliseconds (lower = faster)")
	minSpeed := fs.Int("min-speed", int(def.MinTickInterval*1000), "Shortest tick interval in milliseconds")
	queue := fs.Int("queue", def.QueueDepth, "Pending direction slots")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	term := fs.Bool("term", false, "Play in the terminal instead of a window")
	autopilot := fs.Bool("autopilot", false, "Start with the autopilot playing")
	debugLog := fs.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := def
	cfg.TickInterval = float64(*speed) / 1000
	cfg.MinTickInterval = float64(*minSpeed) / 1000
	cfg.QueueDepth = *queue
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	return options{cfg: cfg, term: *term, autopilot: *autopilot, debug: *debugLog}, nil
}

// setupLogging discards log output unless debug is set, in which case it
// appends to the log file. The returned file must be closed by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	if f := setupLogging(opts.debug); f != nil {
		defer f.Close()
	}

	fmt.Println(banner)

	rng := game.NewRand(opts.cfg.Seed)
	if opts.term {
		err = runTerminal(opts, rng)
	} else {
		err = runWindow(opts, rng)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func runWindow(opts options, rng types.Rand) error {
	g, err := game.New(opts.cfg, rng, os.Stdout)
	if err != nil {
		return err
	}
	pilot := ai.NewAutopilot(rng)
	autopilot := opts.autopilot

	w, h := ui.WindowSize(opts.cfg.Grid())
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() {
		if ui.AutopilotToggled() {
			autopilot = !autopilot
			log.Printf("window: autopilot %v", autopilot)
		}
		for _, in := range ui.PollInputs() {
			g.SubmitInput(in)
		}
		if autopilot {
			if in := pilot.Next(g.Snapshot()); in != game.InputNone {
				g.SubmitInput(in)
			}
		}

		g.Advance(float64(rl.GetFrameTime()))
		renderer.Draw(g.Snapshot(), g.Stats().GetScoreHistory(), autopilot)
	}
	return nil
}

func runTerminal(opts options, rng types.Rand) (err error) {
	// The summary is printed once the screen is gone.
	var summary bytes.Buffer
	g, err := game.New(opts.cfg, rng, &summary)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
		io.Copy(os.Stdout, &summary)
	}()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	host := tui.NewHost(screen, g, ai.NewAutopilot(rng), opts.autopilot)
	err = host.Run(ctx)
	log.Printf("terminal: session ended after %s", time.Since(start).Round(time.Second))
	if err == context.Canceled {
		err = nil
	}
	return err
}
