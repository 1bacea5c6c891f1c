package ui

import (
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	TileSize      = 50
	borderPadding = 10
	maxScores     = 200 // points shown in the score graph
)

var (
	backgroundColor = rl.NewColor(0x00, 0x11, 0x22, 255)
	wallColor       = rl.NewColor(0x00, 0x29, 0x51, 255)
	snakeColor      = rl.NewColor(0x8b, 0xa6, 0x73, 255)
	appleColor      = rl.NewColor(0xb8, 0x3e, 0x3e, 255)
	candyColor      = rl.NewColor(0xb1, 0x9d, 0x46, 255)
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	statsPanel      int32
	graphHeight     int32
	graphWidth      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// WindowSize returns a window that fits the board plus the stats panel.
func WindowSize(grid types.Grid) (int32, int32) {
	w := int32(grid.Width) * TileSize
	h := int32(grid.Height) * TileSize
	return w + w/3, h
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from a snapshot. Nothing here touches the game.
func (r *Renderer) Draw(snap game.Snapshot, history []manager.GameRecord, autopilot bool) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	fontSize := min(r.screenHeight/30, r.statsPanel/10)
	lineHeight := fontSize + fontSize/2

	if snap.State == game.GameOver {
		rl.ClearBackground(rl.Black)
		r.drawGameOver(snap, fontSize)
		r.drawStatsPanel(snap, history, autopilot, fontSize, lineHeight)
		return
	}
	rl.ClearBackground(rl.Black)

	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(snap.Grid.Width), availableHeight/int32(snap.Grid.Height))
	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, backgroundColor)

	for _, f := range snap.Food {
		if !f.Visible {
			continue
		}
		color := appleColor
		if f.Kind == manager.Candy {
			color = candyColor
		}
		r.drawCell(f.Position, color)
	}
	for _, p := range snap.Body {
		r.drawCell(p, snakeColor)
	}
	for _, w := range snap.Walls {
		r.drawCell(w, wallColor)
	}

	if snap.State == game.Paused {
		text := "PAUSED"
		width := rl.MeasureText(text, fontSize*2)
		rl.DrawText(text,
			r.offsetX+(r.totalGridWidth-width)/2,
			r.offsetY+r.totalGridHeight/2-fontSize,
			fontSize*2, rl.White)
	}

	r.drawStatsPanel(snap, history, autopilot, fontSize, lineHeight)
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawGameOver(snap game.Snapshot, fontSize int32) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Score: %d", snap.Score),
		"R to restart, Esc to quit",
	}
	y := r.screenHeight/2 - int32(len(lines))*fontSize
	for _, line := range lines {
		width := rl.MeasureText(line, fontSize)
		rl.DrawText(line, (r.gameWidth-width)/2, y, fontSize, rl.White)
		y += fontSize * 2
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, history []manager.GameRecord, autopilot bool, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High: %d", snap.HighScore),
		fmt.Sprintf("Avg: %.1f", snap.Average),
		fmt.Sprintf("Games: %d", snap.Games),
		fmt.Sprintf("Last: %s", snap.LastGame.Round(time.Second)),
		fmt.Sprintf("Level: %s", snap.Level),
		fmt.Sprintf("Tick: %.0fms", snap.TickInterval*1000),
		snap.State.String(),
	}
	if autopilot {
		lines = append(lines, "Autopilot")
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(history, statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(history []manager.GameRecord, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize
	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)

	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}
	if len(history) < 2 {
		return
	}

	maxScore := 1
	for _, rec := range history {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	for j := 1; j < len(history); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(len(history)-1))
		y1 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(history[j-1].Score)/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(len(history)-1))
		y2 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(history[j].Score)/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}
}
