package ui

import (
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TranslateKey maps a raylib key code to a game key.
func TranslateKey(code int32) types.Key {
	switch code {
	case rl.KeyDown:
		return types.KeyDown
	case rl.KeyRight:
		return types.KeyRight
	case rl.KeyUp:
		return types.KeyUp
	case rl.KeyLeft:
		return types.KeyLeft
	case rl.KeyR:
		return types.KeyRestart
	default:
		return types.KeyNone
	}
}

// PressedKeys drains raylib's key queue for this frame, in press order.
func PressedKeys() []types.Key {
	var keys []types.Key
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k := TranslateKey(code); k != types.KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}
