package entity

import (
	"image/color"
	"testing"

	"snake-grid/game/types"
)

var testGrid = types.Grid{Width: 32, Height: 24}

func TestNewSnake(t *testing.T) {
	s := NewSnake(testGrid)

	want := []types.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	assertBody(t, s, want)
	if s.Direction() != types.Down {
		t.Errorf("Expected initial direction down, got %s", s.Direction())
	}
	if s.HitItself() {
		t.Error("Fresh snake should not hit itself")
	}
	if s.X() != 2 || s.Y() != 3 {
		t.Errorf("Expected head (2,3), got (%d,%d)", s.X(), s.Y())
	}
}

func TestMoveDown(t *testing.T) {
	s := NewSnake(testGrid)
	s.Move()

	assertBody(t, s, []types.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}})
	if s.HitItself() {
		t.Error("Snake should not hit itself after a straight move")
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(testGrid)
	for i := 0; i < 50; i++ {
		s.Move()
		if s.Len() != 4 {
			t.Fatalf("Move %d: expected length 4, got %d", i, s.Len())
		}
	}
}

func TestGrowTakesEffectOnce(t *testing.T) {
	s := NewSnake(testGrid)
	s.Grow()
	if !s.Growing() {
		t.Fatal("Expected growing flag after Grow")
	}

	s.Move()
	if s.Len() != 5 {
		t.Errorf("Expected length 5 after growing move, got %d", s.Len())
	}
	if s.Growing() {
		t.Error("Growing flag should be consumed by Move")
	}

	s.Move()
	if s.Len() != 5 {
		t.Errorf("Expected length 5 after second move, got %d", s.Len())
	}
}

func TestMoveWraps(t *testing.T) {
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge", types.Point{X: 31, Y: 5}, types.Right, types.Point{X: 0, Y: 5}},
		{"bottom edge", types.Point{X: 7, Y: 23}, types.Down, types.Point{X: 7, Y: 0}},
		{"top edge", types.Point{X: 7, Y: 0}, types.Up, types.Point{X: 7, Y: 23}},
		{"left edge", types.Point{X: 0, Y: 9}, types.Left, types.Point{X: 31, Y: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snake{body: []types.Point{tt.head}, direction: tt.dir, grid: testGrid}
			s.Move()
			if got := s.GetHead(); got != tt.want {
				t.Errorf("Expected head %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCanChangeDirectionTo(t *testing.T) {
	for _, cur := range types.Directions {
		s := NewSnake(testGrid)
		s.SetDirection(cur)
		for _, next := range types.Directions {
			want := next != cur.Opposite()
			if got := s.CanChangeDirectionTo(next); got != want {
				t.Errorf("From %s to %s: expected %v, got %v", cur, next, want, got)
			}
		}
	}
}

func TestCanChangeDirectionFromDown(t *testing.T) {
	s := NewSnake(testGrid)
	if s.CanChangeDirectionTo(types.Up) {
		t.Error("Expected down -> up to be rejected")
	}
	if !s.CanChangeDirectionTo(types.Right) {
		t.Error("Expected down -> right to be allowed")
	}
}

func TestHitItself(t *testing.T) {
	s := &Snake{
		body: []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}},
		grid: testGrid,
	}
	if !s.HitItself() {
		t.Error("Expected duplicate cell to count as self-collision")
	}

	s.body = s.body[1:]
	if s.HitItself() {
		t.Error("Expected distinct cells to not collide")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(testGrid)
	body := s.Body()
	body[0] = types.Point{X: 9, Y: 9}
	if s.Body()[0] == body[0] {
		t.Error("Body should return a copy")
	}
}

type square struct {
	x, y, size int32
}

type squareCanvas struct {
	squares []square
}

func (c *squareCanvas) Square(x, y, size int32, _ color.RGBA) {
	c.squares = append(c.squares, square{x, y, size})
}
func (c *squareCanvas) Circle(int32, int32, float32, color.RGBA) {}
func (c *squareCanvas) Text(string, int32, int32, int32, color.RGBA) {}

func TestDraw(t *testing.T) {
	s := NewSnake(testGrid)
	c := &squareCanvas{}
	s.Draw(c)

	if len(c.squares) != 4 {
		t.Fatalf("Expected 4 squares, got %d", len(c.squares))
	}
	for i, sq := range c.squares {
		want := square{x: 2*types.CellSize + 1, y: int32(i*types.CellSize + 1), size: types.CellSize - 2}
		if sq != want {
			t.Errorf("Square %d: expected %+v, got %+v", i, want, sq)
		}
	}
}

func assertBody(t *testing.T, s *Snake, want []types.Point) {
	t.Helper()
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("Expected body %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected body %v, got %v", want, got)
		}
	}
}
