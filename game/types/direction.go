package types

// Direction represents a cardinal heading on the grid
type Direction int

const (
	Down Direction = iota
	Right
	Up
	Left
)

// Offset converts a Direction into a one-cell move vector.
// Y grows downwards.
func (d Direction) Offset() Point {
	switch d {
	case Down:
		return Point{X: 0, Y: 1}
	case Right:
		return Point{X: 1, Y: 0}
	case Up:
		return Point{X: 0, Y: -1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Down:
		return Up
	case Right:
		return Left
	case Up:
		return Down
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Directions lists every valid heading
var Directions = [...]Direction{Down, Right, Up, Left}

// ParseDirection maps the lowercase direction names back to a Direction
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Down, false
}
