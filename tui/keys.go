package tui

import (
	"snake-arcade/game"

	"github.com/gdamore/tcell/v2"
)

// Command is a host-level action that never reaches the game core.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdAutopilot
)

// Classify turns a key event into a game input or a host command.
// Unrecognised keys yield InputNone and CmdNone.
func Classify(ev *tcell.EventKey) (game.Input, Command) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.InputUp, CmdNone
	case tcell.KeyDown:
		return game.InputDown, CmdNone
	case tcell.KeyLeft:
		return game.InputLeft, CmdNone
	case tcell.KeyRight:
		return game.InputRight, CmdNone
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.InputNone, CmdQuit
	case tcell.KeyTab:
		return game.InputNone, CmdAutopilot
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return game.InputUp, CmdNone
		case 's', 'S', 'j':
			return game.InputDown, CmdNone
		case 'a', 'A', 'h':
			return game.InputLeft, CmdNone
		case 'd', 'D', 'l':
			return game.InputRight, CmdNone
		case 'p', 'P', ' ':
			return game.InputPause, CmdNone
		case 'r', 'R':
			return game.InputRestart, CmdNone
		case 'q', 'Q':
			return game.InputNone, CmdQuit
		}
	}
	return game.InputNone, CmdNone
}
