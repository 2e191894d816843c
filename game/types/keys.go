package types

// Key identifies an input event the game reacts to. The windowing layer
// translates its raw key codes into these.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyRight
	KeyUp
	KeyLeft
	KeyRestart
)

// Direction returns the heading bound to a directional key.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyDown:
		return Down, true
	case KeyRight:
		return Right, true
	case KeyUp:
		return Up, true
	case KeyLeft:
		return Left, true
	default:
		return Down, false
	}
}
