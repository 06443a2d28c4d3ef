package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.Fill(core.MustHex("#2c2f33"))
	s.FillRect(core.NewRect(4, 0, 4, 2), core.MustHex("#f4d35e"))
	s.DrawText(0, 0, "ab", core.ColorWhite)
	s.DrawText(5, 1, "2", core.ColorWhite)

	lines := strings.Split(RenderScreen(s), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[1], "2")
}
