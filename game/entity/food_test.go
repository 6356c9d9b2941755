package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"retro-snake/game/types"
)

// scriptedRand replays fixed values, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// cells is a fixed set of occupied cells.
type cells []types.Point

func (c cells) Occupies(p types.Point) bool {
	return OccupiedBy(p, c)
}

func TestFoodRelocateSkipsOccupiedCells(t *testing.T) {
	grid := types.Grid{Width: 25, Height: 25}
	// First two samples land on the snake, the third is free.
	rng := &scriptedRand{vals: []int{6, 9, 5, 9, 10, 11}}
	snake := NewDefaultSnake()

	f := NewFood(grid, rng, snake)

	if f.Position != (types.Point{X: 10, Y: 11}) {
		t.Errorf("Position = %v, want {10 11}", f.Position)
	}
	if rng.i != 6 {
		t.Errorf("sampled %d values, want 6", rng.i)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	rng := rand.New(rand.NewSource(42))

	// A snake filling all but one row leaves five free cells.
	var body cells
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			body = append(body, types.Point{X: x, Y: y})
		}
	}

	f := NewFood(grid, rng, body)
	for i := 0; i < 200; i++ {
		f.Relocate(body)
		if body.Occupies(f.Position) {
			t.Fatalf("food placed on occupied cell %v", f.Position)
		}
		if !grid.Contains(f.Position) {
			t.Fatalf("food placed outside grid at %v", f.Position)
		}
	}
}

func TestFoodCoversGrid(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	rng := rand.New(rand.NewSource(7))
	f := NewFood(grid, rng, cells{})

	seen := make(map[types.Point]bool)
	for i := 0; i < 2000; i++ {
		f.Relocate(cells{})
		seen[f.Position] = true
	}

	if len(seen) != 16 {
		t.Errorf("visited %d cells, want all 16", len(seen))
	}
}

func TestOccupiedBy(t *testing.T) {
	body := []types.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	if !OccupiedBy(types.Point{X: 3, Y: 4}, body) {
		t.Error("expected {3 4} to be found")
	}
	if OccupiedBy(types.Point{X: 2, Y: 1}, body) {
		t.Error("did not expect {2 1} to be found")
	}
	if OccupiedBy(types.Point{}, nil) {
		t.Error("empty list contains nothing")
	}
}
