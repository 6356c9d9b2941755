package entity

import (
	"retro-snake/game/types"
)

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// Occupier is anything that can claim grid cells.
type Occupier interface {
	Occupies(p types.Point) bool
}

// OccupiedBy is a linear membership test.
func OccupiedBy(cell types.Point, cells []types.Point) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}

type Food struct {
	Position types.Point
	grid     types.Grid
	rng      RandomSource
}

// NewFood places food on a random cell not claimed by occupied.
func NewFood(grid types.Grid, rng RandomSource, occupied Occupier) *Food {
	f := &Food{grid: grid, rng: rng}
	f.Relocate(occupied)
	return f
}

// Relocate resamples the position until it lands on a free cell.
// It never returns if occupied covers the whole grid.
func (f *Food) Relocate(occupied Occupier) {
	pos := f.randomCell()
	for occupied.Occupies(pos) {
		pos = f.randomCell()
	}
	f.Position = pos
}

func (f *Food) randomCell() types.Point {
	return types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}
