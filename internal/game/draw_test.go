package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/grid"
)

type drawOp struct {
	kind  string // "clear", "rect", "text"
	rect  core.Rect
	text  string
	x, y  int
	size  int
	color core.Color
}

// recordingCanvas records draw calls. Text is runeWidth wide per rune, or
// size/2 when runeWidth is zero.
type recordingCanvas struct {
	ops       []drawOp
	runeWidth int
}

func (c *recordingCanvas) Clear(col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "clear", color: col})
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", rect: r, color: col})
}

func (c *recordingCanvas) DrawText(s string, x, y, size int, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", text: s, x: x, y: y, size: size, color: col})
}

func (c *recordingCanvas) MeasureText(s string, size int) int {
	if c.runeWidth > 0 {
		return len([]rune(s)) * c.runeWidth
	}
	return len([]rune(s)) * size / 2
}

func (c *recordingCanvas) texts() map[string]drawOp {
	m := make(map[string]drawOp)
	for _, op := range c.ops {
		if op.kind == "text" {
			m[op.text] = op
		}
	}
	return m
}

func TestDrawLayout(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{})
	g.board = grid.Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 11, 0},
		{0, 0, 0, 12},
	}

	c := &recordingCanvas{}
	g.Draw(c, time.Now())

	if len(c.ops) < 2 {
		t.Fatalf("expected at least 2 ops, got %d", len(c.ops))
	}
	if c.ops[0].kind != "clear" || c.ops[0].color != th.Background {
		t.Errorf("first op = %+v, want clear with background", c.ops[0])
	}
	wantBg := core.NewRect(99, 99, 402, 402)
	if c.ops[1].kind != "rect" || c.ops[1].rect != wantBg || c.ops[1].color != th.GridBackground {
		t.Errorf("second op = %+v, want grid background %v", c.ops[1], wantBg)
	}

	rects := 0
	for _, op := range c.ops[2:] {
		if op.kind == "rect" {
			rects++
		}
	}
	if rects != grid.Size*grid.Size {
		t.Errorf("drew %d tile rects, want %d", rects, grid.Size*grid.Size)
	}

	texts := c.texts()

	// Score "0" is one rune, 16 px wide: centred horizontally, y = 100/2 - 32/2.
	score, ok := texts["0"]
	if !ok {
		t.Fatal("score text not drawn")
	}
	if score.x != (600-16)/2 || score.y != 34 || score.size != 32 {
		t.Errorf("score drawn at (%d,%d) size %d, want (292,34) size 32", score.x, score.y, score.size)
	}

	// Tile "2" in the top-left cell, centred in 100x100 at (100,100).
	two, ok := texts["2"]
	if !ok {
		t.Fatal("tile 2 not drawn")
	}
	if two.x != 100+(100-16)/2 || two.y != 100+(100-32)/2 {
		t.Errorf("tile 2 text at (%d,%d), want (142,134)", two.x, two.y)
	}

	if _, ok := texts["2048"]; !ok {
		t.Error("tile 2048 not drawn")
	}
	if _, ok := texts["4096"]; !ok {
		t.Error("tile 4096 not drawn")
	}
}

func TestDrawTileColors(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{})
	g.board = grid.Grid{{1, 11, 12, 0}}

	c := &recordingCanvas{}
	g.Draw(c, time.Now())

	want := map[core.Rect]string{
		g.TileRect(grid.Point{Row: 0, Col: 0}): "#f4d35e",
		g.TileRect(grid.Point{Row: 0, Col: 1}): "#b8860b",
		g.TileRect(grid.Point{Row: 0, Col: 2}): "#f4d35e",
		g.TileRect(grid.Point{Row: 0, Col: 3}): "#3a3d42",
	}
	for _, op := range c.ops {
		if op.kind != "rect" {
			continue
		}
		if hex, ok := want[op.rect]; ok && op.color.Hex() != hex {
			t.Errorf("tile at %+v filled %s, want %s", op.rect, op.color.Hex(), hex)
		}
	}
}

func TestDrawScoreDelta(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{})
	g.board = grid.Grid{{1, 1}}
	g.moved = false
	t0 := time.Now()
	g.Step(input(core.ActionLeft), t0)

	c := &recordingCanvas{}
	g.Draw(c, t0.Add(500*time.Millisecond))
	texts := c.texts()

	score := texts["4"]
	delta, ok := texts[" +4"]
	if !ok {
		t.Fatal("score delta not drawn")
	}
	if delta.x != score.x+16 || delta.y != score.y {
		t.Errorf("delta at (%d,%d), want right of score at (%d,%d)", delta.x, delta.y, score.x+16, score.y)
	}
	if delta.color.A != 127 {
		t.Errorf("delta alpha = %d, want 127 half way through the fade", delta.color.A)
	}

	c = &recordingCanvas{}
	g.Draw(c, t0.Add(2*time.Second))
	if _, ok := c.texts()[" +4"]; ok {
		t.Error("delta should not be drawn once fully faded")
	}
}

func TestDrawLockedOverlay(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{vals: []int{0, 0}})
	g.board = lockingBoard
	g.Step(input(), time.Now())
	if !g.State().Locked {
		t.Fatal("expected locked grid")
	}

	c := &recordingCanvas{}
	g.Draw(c, time.Now())

	last := c.ops[len(c.ops)-1]
	want := drawOp{kind: "rect", rect: core.NewRect(99, 99, 402, 402), color: th.GridBackground.Alpha(0.5)}
	if last != want {
		t.Errorf("last op = %+v, want %+v", last, want)
	}
	if last.rect != c.ops[1].rect {
		t.Errorf("overlay %v does not cover the grid background %v", last.rect, c.ops[1].rect)
	}
}

func TestDrawCentresOddWidthText(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{})
	g.board = grid.Grid{{1}}

	c := &recordingCanvas{runeWidth: 17}
	g.Draw(c, time.Now())
	texts := c.texts()

	// Half of an odd width rounds down, so text sits at centre - 8.
	if score := texts["0"]; score.x != 292 {
		t.Errorf("score x = %d, want 292", score.x)
	}
	if two := texts["2"]; two.x != 142 || two.y != 134 {
		t.Errorf("tile 2 text at (%d,%d), want (142,134)", two.x, two.y)
	}
}

func TestDrawNoOverlayWhilePlaying(t *testing.T) {
	th := defaultTheme(t)
	g := New(th, &scriptedSource{})

	c := &recordingCanvas{}
	g.Draw(c, time.Now())

	for _, op := range c.ops {
		if op.kind == "rect" && op.color.A != 0xff {
			t.Errorf("unexpected translucent rect %s while playing", fmt.Sprint(op.rect))
		}
	}
}
