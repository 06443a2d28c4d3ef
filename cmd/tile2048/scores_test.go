package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile2048/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *storage.Store, results ...storage.Result) {
	t.Helper()
	for _, r := range results {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openStore(t)

	var buf bytes.Buffer
	require.NoError(t, printScores(&buf, store, 10))
	assert.Contains(t, buf.String(), "No games recorded yet.")
}

func TestPrintScores(t *testing.T) {
	store := openStore(t)
	save(t, store,
		storage.Result{Score: 256, MaxTile: 64, Moves: 90, Locked: true},
		storage.Result{Score: 1024, MaxTile: 128, Moves: 200, Locked: true},
		storage.Result{Score: 12, MaxTile: 8, Moves: 4},
	)

	var buf bytes.Buffer
	require.NoError(t, printScores(&buf, store, 2))
	out := buf.String()

	var rows []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "  1 ") || strings.HasPrefix(l, "  2 ") || strings.HasPrefix(l, "  3 ") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 2, "limit 2 should print two rows:\n%s", out)
	assert.Contains(t, rows[0], "1024", "rows should be ordered by score")
	assert.Contains(t, rows[1], "256", "rows should be ordered by score")
	assert.Contains(t, out, "Best: 1024  Best tile: 128  Games: 3")
}

func TestClearScores(t *testing.T) {
	store := openStore(t)
	save(t, store,
		storage.Result{Score: 256, MaxTile: 64, Moves: 90, Locked: true},
		storage.Result{Score: 12, MaxTile: 8, Moves: 4},
	)

	var buf bytes.Buffer
	require.NoError(t, clearScores(&buf, store))
	assert.Equal(t, "Cleared 2 results.\n", buf.String())

	buf.Reset()
	require.NoError(t, printScores(&buf, store, 10))
	assert.Contains(t, buf.String(), "No games recorded yet.", "results left after clear")
}
