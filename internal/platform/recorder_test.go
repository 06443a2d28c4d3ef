package platform

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/grid"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// zeroSource always picks the top-left cell.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newGame(t *testing.T) *game.Game {
	t.Helper()
	th, err := config.DefaultConfig().Theme()
	require.NoError(t, err)
	return game.New(th, zeroSource{})
}

func press(g *game.Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in, time.Now())
}

func TestRecorderSavesOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	var buf bytes.Buffer
	rec := NewRecorder(store, log.New(&buf))

	g := newGame(t)
	// Tiles always spawn at (0,0), so pushing right merges along row 0.
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	require.Positive(t, g.State().Score)

	_, ok := rec.Flush(g, false)
	assert.False(t, ok, "nothing to record while playing")

	res, ok := rec.Flush(g, true)
	require.True(t, ok)
	assert.False(t, res.Locked)

	saved, err := store.TopResults(10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, res.Score, saved[0].Score)
	assert.Equal(t, res.MaxTile, saved[0].MaxTile)
	assert.Contains(t, buf.String(), "result saved")
	assert.Contains(t, buf.String(), "new high score")

	_, ok = rec.Flush(g, true)
	assert.False(t, ok, "a round is recorded once")
}

func TestRecorderKeepsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.SaveResult(storage.Result{Score: 10000, MaxTile: 1024, Moves: 500})
	require.NoError(t, err)

	var buf bytes.Buffer
	rec := NewRecorder(store, log.New(&buf))

	g := newGame(t)
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	_, ok := rec.Flush(g, true)
	require.True(t, ok)

	assert.Contains(t, buf.String(), "result saved")
	assert.NotContains(t, buf.String(), "new high score")
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, nil)
	g := newGame(t)

	_, ok := rec.Flush(g, true)
	assert.False(t, ok, "zero score is not worth recording")

	press(g, core.ActionRight)
	press(g, core.ActionRight)
	res, ok := rec.Flush(g, true)
	assert.True(t, ok)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, grid.Value(2), res.MaxTile)
}
