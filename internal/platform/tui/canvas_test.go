package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/game"
)

// zeroSource always picks the top-left cell.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	th, err := config.DefaultConfig().Theme()
	require.NoError(t, err)
	return game.New(th, zeroSource{})
}

func TestScreenCanvasSize(t *testing.T) {
	c := NewScreenCanvas(600, 600)
	assert.Equal(t, 60, c.Screen().Width())
	assert.Equal(t, 30, c.Screen().Height())
}

func TestScreenCanvasFillRectSnaps(t *testing.T) {
	c := NewScreenCanvas(600, 600)
	red := core.MustHex("#d72638")

	// The grid background rect, one pixel larger than the grid on every side.
	c.FillRect(core.NewRect(99, 99, 402, 402), red)

	s := c.Screen()
	tests := []struct {
		x, y   int
		inside bool
	}{
		{10, 5, true},
		{49, 24, true},
		{9, 5, false},
		{50, 5, false},
		{10, 4, false},
		{10, 25, false},
	}
	for _, tc := range tests {
		got := s.GetCell(tc.x, tc.y).Bg == red
		assert.Equal(t, tc.inside, got, "cell (%d,%d) filled", tc.x, tc.y)
	}
}

func TestScreenCanvasMeasureText(t *testing.T) {
	c := NewScreenCanvas(600, 600)
	assert.Equal(t, 40, c.MeasureText("2048", 32))
}

func TestGameDrawsOntoCells(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame(), time.Now()) // spawns a 2 at (0,0)

	c := NewScreenCanvas(600, 600)
	g.Draw(c, time.Now())
	s := c.Screen()

	// Score "0" centred on row 2.
	assert.Equal(t, '0', s.Get(30, 2), "row 2 = %q", s.Row(2))

	// The top-left tile covers columns 10-19, rows 5-9, with "2" in the middle.
	tile := core.MustHex("#f4d35e")
	for y := 5; y < 10; y++ {
		for x := 10; x < 20; x++ {
			require.Equal(t, tile.Hex(), s.GetCell(x, y).Bg.Hex(), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, '2', s.Get(15, 7), "row 7 = %q", s.Row(7))

	// Outside the grid is window background.
	assert.Equal(t, "#2c2f33", s.GetCell(0, 0).Bg.Hex())
}
