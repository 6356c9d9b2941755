package game

import (
	"time"

	"retro-snake/game/clock"
	"retro-snake/game/types"
)

// DefaultTickInterval is how often the snake moves.
const DefaultTickInterval = 200 * time.Millisecond

// Frontend is a window or terminal the game is played in.
type Frontend interface {
	// ShouldClose reports whether the player asked to quit.
	ShouldClose() bool
	// PressedDirections returns the direction keys pressed since the last call,
	// in types.Directions order.
	PressedDirections() []types.Direction
	// Draw renders the current state. It may block to pace the frame rate.
	Draw(g *Game)
}

// Run drives the game until the frontend closes. Each iteration ticks the
// logic when the interval has elapsed, applies input and renders.
func (g *Game) Run(f Frontend, ticker *clock.Ticker, gate *InputGate, interval time.Duration) {
	for !f.ShouldClose() {
		g.Frame(f, ticker, gate, interval)
	}
}

// Frame runs a single loop iteration.
func (g *Game) Frame(f Frontend, ticker *clock.Ticker, gate *InputGate, interval time.Duration) {
	if ticker.Elapsed(interval) {
		gate.Open()
		g.Update()
	}

	for _, dir := range f.PressedDirections() {
		gate.Steer(g, dir)
	}

	f.Draw(g)
}
