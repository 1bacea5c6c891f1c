package tui

import (
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two terminal columns wide so it looks square.
const cellWidth = 2

var (
	boardStyle = tcell.StyleDefault.Background(tcell.NewHexColor(0x001122))
	wallStyle  = tcell.StyleDefault.Background(tcell.NewHexColor(0x002951))
	snakeStyle = tcell.StyleDefault.Background(tcell.NewHexColor(0x8ba673))
	appleStyle = tcell.StyleDefault.Background(tcell.NewHexColor(0xb83e3e))
	candyStyle = tcell.StyleDefault.Background(tcell.NewHexColor(0xb19d46))
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// hudRows is the number of text rows above the board. Each row fits the
// board width so nothing is clipped on a narrow terminal.
const hudRows = 2

// Draw paints a snapshot onto s and shows it.
func Draw(s tcell.Screen, snap game.Snapshot, autopilot bool) {
	s.Clear()

	status := fmt.Sprintf("%s  Score %d", snap.State, snap.Score)
	if autopilot {
		status += "  [AI]"
	}
	drawText(s, 0, 0, status, textStyle)
	drawText(s, 0, 1, fmt.Sprintf("High %d  %s", snap.HighScore, snap.Level), textStyle)

	if snap.State == game.GameOver {
		drawText(s, 0, hudRows+1, "### Game Over ###", textStyle)
		drawText(s, 0, hudRows+2, fmt.Sprintf("Score: %d", snap.Score), textStyle)
		drawText(s, 0, hudRows+3, "Press R to restart", textStyle)
		drawText(s, 0, hudRows+4, "Press Esc to quit", textStyle)
		drawText(s, 0, hudRows+5, fmt.Sprintf("Time: %s", snap.LastGame.Round(time.Second)), textStyle)
		s.Show()
		return
	}

	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			drawCell(s, types.Point{X: x, Y: y}, ' ', boardStyle)
		}
	}
	for _, f := range snap.Food {
		if !f.Visible {
			continue
		}
		if f.Kind == manager.Candy {
			drawCell(s, f.Position, '*', candyStyle)
		} else {
			drawCell(s, f.Position, 'o', appleStyle)
		}
	}
	for i, p := range snap.Body {
		r := ' '
		if i == 0 {
			r = '@'
		}
		drawCell(s, p, r, snakeStyle)
	}
	for _, w := range snap.Walls {
		drawCell(s, w, '#', wallStyle)
	}

	if snap.State == game.Paused {
		drawText(s, 0, hudRows+snap.Grid.Height, "PAUSED (P to resume)", textStyle)
	}
	s.Show()
}

func drawCell(s tcell.Screen, p types.Point, r rune, style tcell.Style) {
	x := p.X * cellWidth
	y := p.Y + hudRows
	s.SetContent(x, y, r, nil, style)
	for i := 1; i < cellWidth; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
