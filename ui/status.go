package ui

import (
	"fmt"

	"retro-snake/game"
	"retro-snake/game/types"
)

// RunStatus describes the current run: how long it has lasted while
// playing, and what ended it while stopped.
func RunStatus(g *game.Game) string {
	if g.Running {
		return fmt.Sprintf("Time: %ds", int(g.ElapsedTime()))
	}
	switch g.LastCollision {
	case types.WallCollision:
		return "Hit the wall"
	case types.SelfCollision:
		return "Bit your tail"
	default:
		return ""
	}
}
