// Package window is the raylib frontend.
package window

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"retro-snake/game"
	"retro-snake/game/clock"
	"retro-snake/game/types"
	"retro-snake/ui"
)

const (
	borderThickness = 5
	titleFontSize   = 40
	statsFontSize   = 20
)

// Window is a raylib window. Only one may exist per process.
type Window struct {
	layout      ui.Layout
	foodTexture rl.Texture2D
}

// New opens the game window and loads the food texture.
func New(layout ui.Layout, fps int32) (*Window, error) {
	size := layout.ScreenSize()
	rl.InitWindow(size, size, ui.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("failed to open %dx%d window", size, size)
	}
	rl.SetTargetFPS(fps)

	image := rl.GenImageColor(int(layout.CellSize), int(layout.CellSize), ui.FoodRed)
	texture := rl.LoadTextureFromImage(image)
	rl.UnloadImage(image)

	return &Window{
		layout:      layout,
		foodTexture: texture,
	}, nil
}

// Close releases the food texture and the window.
func (w *Window) Close() {
	rl.UnloadTexture(w.foodTexture)
	rl.CloseWindow()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

var directionKeys = map[types.Direction]int32{
	types.UP:    rl.KeyUp,
	types.DOWN:  rl.KeyDown,
	types.LEFT:  rl.KeyLeft,
	types.RIGHT: rl.KeyRight,
}

func (w *Window) PressedDirections() []types.Direction {
	var pressed []types.Direction
	for _, dir := range types.Directions {
		if rl.IsKeyPressed(directionKeys[dir]) {
			pressed = append(pressed, dir)
		}
	}
	return pressed
}

// Clock returns raylib's clock, which starts at InitWindow.
func (w *Window) Clock() clock.Source {
	return windowClock{}
}

type windowClock struct{}

func (windowClock) Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// Draw renders one frame. EndDrawing waits for the target frame rate.
func (w *Window) Draw(g *game.Game) {
	l := w.layout
	rl.BeginDrawing()
	rl.ClearBackground(ui.Green)

	gridSize := float32(l.CellSize * l.CellCount)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(l.Offset - borderThickness),
		Y:      float32(l.Offset - borderThickness),
		Width:  gridSize + 2*borderThickness,
		Height: gridSize + 2*borderThickness,
	}, borderThickness, ui.DarkGreen)

	rl.DrawText(ui.Title, l.Offset-borderThickness, 20, titleFontSize, ui.DarkGreen)
	bottom := l.Offset + l.CellSize*l.CellCount + 10
	rl.DrawText(fmt.Sprintf("%d", g.Score), l.Offset-borderThickness, bottom, titleFontSize, ui.DarkGreen)

	stats := fmt.Sprintf("Best: %d  Games: %d", g.Stats.GetMaxScore(), g.Stats.GetGamesPlayed())
	statsWidth := rl.MeasureText(stats, statsFontSize)
	rl.DrawText(stats, l.Offset+l.CellSize*l.CellCount-statsWidth, bottom+10, statsFontSize, ui.DarkGreen)

	run := ui.RunStatus(g)
	runWidth := rl.MeasureText(run, statsFontSize)
	rl.DrawText(run, l.Offset+l.CellSize*l.CellCount-runWidth, 30, statsFontSize, ui.DarkGreen)

	fx, fy := l.CellOrigin(g.Food.Position)
	rl.DrawTexture(w.foodTexture, fx, fy, rl.White)

	for _, p := range g.Snake.Body() {
		x, y := l.CellOrigin(p)
		rl.DrawRectangleRounded(rl.Rectangle{
			X:      float32(x),
			Y:      float32(y),
			Width:  float32(l.CellSize),
			Height: float32(l.CellSize),
		}, 0.5, 6, ui.DarkGreen)
	}

	if !g.Running {
		msg := "Press an arrow key"
		msgWidth := rl.MeasureText(msg, statsFontSize)
		rl.DrawText(msg, (l.ScreenSize()-msgWidth)/2, 30+titleFontSize, statsFontSize, ui.DarkGreen)
	}

	rl.EndDrawing()
}
