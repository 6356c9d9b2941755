package game

import "retro-snake/game/types"

// InputGate lets at most one direction change through per logic tick.
type InputGate struct {
	allowMove bool
}

// Open re-arms the gate. The loop calls it on every tick, stopped or not.
func (ig *InputGate) Open() {
	ig.allowMove = true
}

// Steer applies dir to the snake if the gate is open and dir does not
// reverse the current heading. An accepted key also resumes a game
// stopped by a game over. It reports whether dir was accepted.
func (ig *InputGate) Steer(g *Game, dir types.Direction) bool {
	if !ig.allowMove || dir == types.NONE {
		return false
	}
	next := dir.ToPoint()
	if types.IsReversal(g.Snake.Direction, next) {
		return false
	}

	g.Snake.SetDirection(next)
	g.Resume()
	ig.allowMove = false
	return true
}
