package types

import "image/color"

// Canvas is the set of draw primitives the game needs from the window layer.
// Coordinates are in pixels.
type Canvas interface {
	Square(x, y, size int32, c color.RGBA)
	Circle(centerX, centerY int32, radius float32, c color.RGBA)
	Text(text string, x, y, fontSize int32, c color.RGBA)
}

// Palette
var (
	Navy   = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)
