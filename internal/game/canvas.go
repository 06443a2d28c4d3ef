package game

import "github.com/vovakirdan/tile2048/internal/core"

// Canvas is the drawing surface a backend hands to Game.Draw.
// Coordinates are in the theme's pixel space; size is the font size.
type Canvas interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	DrawText(s string, x, y, size int, c core.Color)
	MeasureText(s string, size int) int
}
