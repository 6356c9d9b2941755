package entity

import (
	"retro-snake/game/types"
)

// DefaultSpawn is the body every new or reset snake starts with, head first.
var DefaultSpawn = []types.Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}

// DefaultHeading is the direction a new or reset snake moves in.
var DefaultHeading = types.Point{X: 1, Y: 0}

type Snake struct {
	Direction types.Point

	body         *Segments
	growing      bool
	spawn        []types.Point
	spawnHeading types.Point
}

// NewSnake creates a snake with the given head-first body and heading.
// Reset returns the snake to this configuration.
func NewSnake(spawn []types.Point, heading types.Point) *Snake {
	s := &Snake{
		spawn:        append([]types.Point(nil), spawn...),
		spawnHeading: heading,
		body:         NewSegments(spawn),
	}
	s.Direction = heading
	return s
}

// NewDefaultSnake creates the standard three segment snake moving right.
func NewDefaultSnake() *Snake {
	return NewSnake(DefaultSpawn, DefaultHeading)
}

// Advance moves the head one cell along Direction. The tail is dropped
// unless growth was requested since the last advance.
// Heads outside the grid are allowed here; the game detects them.
func (s *Snake) Advance() {
	s.body.PushFront(s.Head().Add(s.Direction))
	if s.growing {
		s.growing = false
	} else {
		s.body.PopBack()
	}
}

func (s *Snake) Reset() {
	s.body.Reset(s.spawn)
	s.Direction = s.spawnHeading
	s.growing = false
}

// SetDirection changes the heading. Callers must reject reversals.
func (s *Snake) SetDirection(dir types.Point) {
	s.Direction = dir
}

// RequestGrowth makes the next Advance keep the tail.
func (s *Snake) RequestGrowth() {
	s.growing = true
}

func (s *Snake) Head() types.Point {
	return s.body.At(0)
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a head-first copy of the body.
func (s *Snake) Body() []types.Point {
	return s.body.Slice()
}

// Occupies reports whether any segment, head included, sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	return s.body.Contains(p, 0)
}

// HeadOnBody reports whether the head shares a cell with another segment.
func (s *Snake) HeadOnBody() bool {
	body := s.body.Slice()
	return OccupiedBy(body[0], body[1:])
}
