package ui

import (
	"image/color"

	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws onto the raylib window. It satisfies types.Canvas.
type Renderer struct {
	background color.RGBA
}

func NewRenderer(background color.RGBA) *Renderer {
	return &Renderer{background: background}
}

// Drawable is anything that can paint itself on a canvas.
type Drawable interface {
	Draw(c types.Canvas)
}

// Frame clears the window and draws d.
func (r *Renderer) Frame(d Drawable) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)
	d.Draw(r)
	rl.EndDrawing()
}

func (r *Renderer) Square(x, y, size int32, c color.RGBA) {
	rl.DrawRectangle(x, y, size, size, c)
}

func (r *Renderer) Circle(centerX, centerY int32, radius float32, c color.RGBA) {
	rl.DrawCircle(centerX, centerY, radius, c)
}

func (r *Renderer) Text(text string, x, y, fontSize int32, c color.RGBA) {
	rl.DrawText(text, x, y, fontSize, c)
}
