package tui

import (
	"github.com/vovakirdan/tile2048/internal/core"
)

// Pixels per terminal cell. Cells are about twice as tall as they are wide,
// so a 600x600 layout becomes 60x30 cells.
const (
	pxPerCol = 10
	pxPerRow = 20
)

// ScreenCanvas draws the game's pixel layout onto a cell buffer.
type ScreenCanvas struct {
	screen *core.Screen
}

// NewScreenCanvas creates a canvas for a width x height pixel layout.
func NewScreenCanvas(width, height int) *ScreenCanvas {
	return &ScreenCanvas{screen: core.NewScreen(toCols(width), toRows(height))}
}

// Screen returns the underlying cell buffer.
func (c *ScreenCanvas) Screen() *core.Screen {
	return c.screen
}

// Clear implements game.Canvas.
func (c *ScreenCanvas) Clear(col core.Color) {
	c.screen.Fill(col)
}

// FillRect implements game.Canvas. Edges snap to the nearest cell boundary.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	x0, x1 := toCols(r.X), toCols(r.Right())
	y0, y1 := toRows(r.Y), toRows(r.Bottom())
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), col)
}

// DrawText implements game.Canvas. The text lands on the row holding its
// vertical centre.
func (c *ScreenCanvas) DrawText(s string, x, y, size int, col core.Color) {
	c.screen.DrawText(toCols(x), (y+size/2)/pxPerRow, s, col)
}

// MeasureText implements game.Canvas. Every rune takes one cell.
func (c *ScreenCanvas) MeasureText(s string, _ int) int {
	return len([]rune(s)) * pxPerCol
}

func toCols(px int) int {
	return (px + pxPerCol/2) / pxPerCol
}

func toRows(px int) int {
	return (px + pxPerRow/2) / pxPerRow
}
