// Package platform holds what the desktop and terminal front ends share:
// handing finished rounds to the result history.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// Recorder saves finished rounds. A nil store is allowed: results are then
// only logged.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
}

// NewRecorder creates a recorder. A nil logger discards output.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// Flush takes the game's pending result, if any, and records it.
// It reports whether a result was taken. Storage errors are logged and
// otherwise ignored; play goes on without history.
func (r *Recorder) Flush(g *game.Game, quitting bool) (game.Result, bool) {
	res, ok := g.PendingResult(quitting)
	if !ok {
		return game.Result{}, false
	}

	if res.Locked {
		r.logger.Info("grid locked", "score", res.Score, "max_tile", res.MaxTile, "moves", res.Moves, "round", g.Round())
	}

	if r.store == nil {
		r.logger.Debug("no result store, skipping save", "score", res.Score)
		return res, true
	}

	best, bestErr := r.store.HighScore()
	if bestErr != nil {
		r.logger.Debug("could not read high score", "error", bestErr)
	}

	id, err := r.store.SaveResult(storage.Result{
		Score:   res.Score,
		MaxTile: res.MaxTile,
		Moves:   res.Moves,
		Locked:  res.Locked,
	})
	if err != nil {
		r.logger.Warn("could not save result", "error", err)
		return res, true
	}

	r.logger.Info("result saved", "id", id, "score", res.Score, "locked", res.Locked)
	if bestErr == nil && res.Score > best {
		r.logger.Info("new high score", "score", res.Score, "previous", best)
	}
	return res, true
}
