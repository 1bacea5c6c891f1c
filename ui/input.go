package ui

import (
	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyInputs = []struct {
	key   int32
	input game.Input
}{
	{rl.KeyUp, game.InputUp},
	{rl.KeyW, game.InputUp},
	{rl.KeyDown, game.InputDown},
	{rl.KeyS, game.InputDown},
	{rl.KeyLeft, game.InputLeft},
	{rl.KeyA, game.InputLeft},
	{rl.KeyRight, game.InputRight},
	{rl.KeyD, game.InputRight},
	{rl.KeyP, game.InputPause},
	{rl.KeyR, game.InputRestart},
}

// PollInputs returns the inputs pressed since the last frame, in table order.
func PollInputs() []game.Input {
	var inputs []game.Input
	for _, k := range keyInputs {
		if rl.IsKeyPressed(k.key) {
			inputs = append(inputs, k.input)
		}
	}
	return inputs
}

// AutopilotToggled reports a press of the autopilot key.
func AutopilotToggled() bool {
	return rl.IsKeyPressed(rl.KeyTab)
}
