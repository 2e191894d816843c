package entity

import (
	"snake-grid/game/types"
)

// Snake is an ordered list of cells from tail to head.
type Snake struct {
	body      []types.Point // tail first, head last
	direction types.Direction
	growing   bool
	grid      types.Grid
}

// NewSnake returns the starting snake: four cells in column 2 heading down.
func NewSnake(grid types.Grid) *Snake {
	return &Snake{
		body: []types.Point{
			{X: 2, Y: 0},
			{X: 2, Y: 1},
			{X: 2, Y: 2},
			{X: 2, Y: 3},
		},
		direction: types.Down,
		grid:      grid,
	}
}

// Move advances the head one cell, wrapping around the grid edges.
// The tail is kept when a Grow is pending.
func (s *Snake) Move() {
	newHead := s.grid.Wrap(s.GetHead().Add(s.direction.Offset()))
	if !s.growing {
		s.removeTail()
	}
	s.growing = false
	s.body = append(s.body, newHead)
}

func (s *Snake) removeTail() {
	if len(s.body) > 0 {
		s.body = s.body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.body[len(s.body)-1]
}

// X and Y expose the head for apple checks
func (s *Snake) X() int { return s.GetHead().X }
func (s *Snake) Y() int { return s.GetHead().Y }

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// CanChangeDirectionTo reports whether dir is not a 180-degree turn.
func (s *Snake) CanChangeDirectionTo(dir types.Direction) bool {
	return dir != s.direction.Opposite()
}

// SetDirection assigns the heading unconditionally; callers check
// CanChangeDirectionTo first.
func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

func (s *Snake) Grow() {
	s.growing = true
}

func (s *Snake) Growing() bool {
	return s.growing
}

// HitItself reports whether any cell appears twice in the body.
func (s *Snake) HitItself() bool {
	seen := make(map[types.Point]struct{}, len(s.body))
	for _, p := range s.body {
		seen[p] = struct{}{}
	}
	return len(seen) != len(s.body)
}

// Body returns a copy of the occupied cells, tail first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Draw emits one square per body cell with a one pixel gap on each side.
func (s *Snake) Draw(c types.Canvas) {
	for _, p := range s.body {
		c.Square(
			int32(p.X*types.CellSize+1),
			int32(p.Y*types.CellSize+1),
			types.CellSize-2,
			types.White)
	}
}
