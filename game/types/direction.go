package types

// Direction is one of the four cardinal headings.
type Direction int

const (
	NONE Direction = iota
	UP
	DOWN
	LEFT
	RIGHT
)

// Directions lists the headings in the order keys are polled each frame.
var Directions = [...]Direction{UP, DOWN, LEFT, RIGHT}

// ToPoint converts a Direction into a unit movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1} // y grows downwards
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	case RIGHT:
		return Point{X: 1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	default:
		return NONE
	}
}

// DirectionOf interprets a unit vector as a cardinal heading.
func DirectionOf(p Point) Direction {
	switch {
	case p.Y < 0:
		return UP
	case p.Y > 0:
		return DOWN
	case p.X < 0:
		return LEFT
	case p.X > 0:
		return RIGHT
	default:
		return NONE
	}
}

// IsReversal reports whether moving along next from cur would turn the
// snake back onto itself. Both are unit vectors.
func IsReversal(cur, next Point) bool {
	return DirectionOf(next) == DirectionOf(cur).Opposite()
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	default:
		return "none"
	}
}
