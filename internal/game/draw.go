package game

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/grid"
)

// lockedOverlayAlpha is the opacity of the veil drawn over a locked grid.
const lockedOverlayAlpha = 0.5

// GridRect returns the area covered by the tiles, centred in the window.
func (g *Game) GridRect() core.Rect {
	t := g.theme
	return core.NewRect((t.Width-t.GridSize)/2, (t.Height-t.GridSize)/2, t.GridSize, t.GridSize)
}

// TileRect returns the area of the cell at p.
func (g *Game) TileRect(p grid.Point) core.Rect {
	gr := g.GridRect()
	ts := g.theme.TileSize
	return core.NewRect(gr.X+p.Col*ts, gr.Y+p.Row*ts, ts, ts)
}

// Draw renders the current frame.
func (g *Game) Draw(c Canvas, now time.Time) {
	t := g.theme
	gr := g.GridRect()

	c.Clear(t.Background)
	c.FillRect(gr.Inset(-1), t.GridBackground)

	g.drawScore(c, gr, now)

	for row := range grid.Size {
		for col := range grid.Size {
			g.drawTile(c, grid.Point{Row: row, Col: col})
		}
	}

	if g.locked {
		c.FillRect(gr.Inset(-1), t.GridBackground.Alpha(lockedOverlayAlpha))
	}
}

// drawScore centres the score above the grid and trails it with the fading
// " +N" of the last increase.
func (g *Game) drawScore(c Canvas, gr core.Rect, now time.Time) {
	t := g.theme
	s := strconv.Itoa(g.score)
	w := c.MeasureText(s, t.FontSize)
	cx, _ := gr.Center()
	x := cx - w/2
	y := gr.Y/2 - t.FontSize/2
	c.DrawText(s, x, y, t.FontSize, t.Text)

	if alpha := g.fadeAlpha(now); alpha > 0 {
		c.DrawText(fmt.Sprintf(" +%d", g.lastDelta), x+w, y, t.FontSize, t.Text.Alpha(alpha))
	}
}

func (g *Game) drawTile(c Canvas, p grid.Point) {
	t := g.theme
	r := g.TileRect(p)
	rank := g.board[p.Row][p.Col]

	c.FillRect(r, t.TileColor(rank))
	if rank == 0 {
		return
	}

	s := strconv.Itoa(grid.Value(rank))
	w := c.MeasureText(s, t.FontSize)
	cx, cy := r.Center()
	c.DrawText(s, cx-w/2, cy-t.FontSize/2, t.FontSize, t.Text)
}
