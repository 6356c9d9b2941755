package types

// Point is a cell on the game grid, in grid units.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
