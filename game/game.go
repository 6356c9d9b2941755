package game

import (
	"time"

	"github.com/google/uuid"

	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"
)

// Game owns the snake, the food and the score, and applies one logic tick per Update.
type Game struct {
	UUID          string
	Grid          types.Grid
	Snake         *entity.Snake
	Food          *entity.Food
	Score         int
	Running       bool
	Steps         int // ticks in the current run
	LastCollision types.CollisionType
	Stats         *SessionStats

	// OnEat is called after a food collision with the new score.
	OnEat func(score int)
	// OnGameOver is called after the reset with the cause and the score the run ended on.
	OnGameOver func(cause types.CollisionType, finalScore int)

	collisionMgr *manager.CollisionManager
	runStart     time.Time
	now          func() time.Time
}

// NewGame creates a running game on a size x size grid with the default snake.
func NewGame(size int, rng entity.RandomSource) *Game {
	return NewGameWithSnake(types.Grid{Width: size, Height: size}, entity.NewDefaultSnake(), rng)
}

// NewGameWithSnake creates a running game around an existing snake.
func NewGameWithSnake(grid types.Grid, snake *entity.Snake, rng entity.RandomSource) *Game {
	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		Snake:        snake,
		Food:         entity.NewFood(grid, rng, snake),
		Running:      true,
		Stats:        NewSessionStats(),
		collisionMgr: manager.NewCollisionManager(grid),
		now:          time.Now,
	}
	g.runStart = g.now()
	return g
}

// Update advances the game by one tick. It does nothing while the game is stopped.
func (g *Game) Update() {
	if !g.Running {
		return
	}

	g.Steps++
	g.Snake.Advance()
	head := g.Snake.Head()

	if g.collisionMgr.IsFoodCollision(head, g.Food) {
		g.Food.Relocate(g.Snake)
		g.Snake.RequestGrowth()
		g.Score++
		if g.OnEat != nil {
			g.OnEat(g.Score)
		}
	}

	if cause := g.collisionMgr.CheckCollision(g.Snake); cause != types.NoCollision {
		g.GameOver(cause)
	}
}

// GameOver records the finished run, resets the snake, moves the food and
// stops the game with the score back at zero.
func (g *Game) GameOver(cause types.CollisionType) {
	finalScore := g.Score
	g.Stats.AddGame(finalScore, g.runStart, g.now())

	g.Snake.Reset()
	g.Food.Relocate(g.Snake)
	g.Running = false
	g.Score = 0
	g.LastCollision = cause

	if g.OnGameOver != nil {
		g.OnGameOver(cause, finalScore)
	}
}

// Resume restarts a stopped game. It is a no-op while running.
func (g *Game) Resume() {
	if g.Running {
		return
	}
	g.Running = true
	g.Steps = 0
	g.runStart = g.now()
}

// ElapsedTime returns how long the current run has lasted, in seconds.
func (g *Game) ElapsedTime() float64 {
	return g.now().Sub(g.runStart).Seconds()
}
