package types

import "time"

// Window and grid constants. Fixed at startup.
const (
	Title        = "Snake"
	WindowWidth  = 640
	WindowHeight = 480
	CellSize     = 20 // 640x480 gives 32x24 cells

	TickRate  = 10 // simulation steps per second
	RenderFPS = 60
	FontSize  = 20
)

// TickInterval is the fixed time between two snake moves
const TickInterval = time.Second / TickRate
