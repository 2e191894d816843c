package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a single cell on the grid
type Point struct {
	X, Y int
}

// DefaultGrid derives the grid from the window size and cell size
func DefaultGrid() Grid {
	return Grid{
		Width:  WindowWidth / CellSize,
		Height: WindowHeight / CellSize,
	}
}

// Wrap maps v into [0, n). Negative values wrap to the high end.
func Wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Wrap returns p moved back onto the toroidal grid.
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Add offsets p by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}
