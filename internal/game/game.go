// Package game runs the 2048 presentation loop: it owns the grid, the score
// and the score-delta fade, advances one frame per Step and draws the frame
// onto any Canvas.
package game

import (
	"time"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/grid"
)

// Game is a single 2048 session. It is not safe for concurrent use; backends
// call Step and Draw from their frame goroutine.
type Game struct {
	theme config.Theme
	rng   grid.Source
	tick  uint64

	board grid.Grid
	score int
	moves int

	// moved is set when the previous frame changed the board. It starts true
	// so the very first frame spawns a tile.
	moved  bool
	locked bool

	lastDelta   int
	lastScoreAt time.Time

	rounds   int
	recorded bool // result of the current round already handed out
}

// Result summarises a finished (or abandoned) round.
type Result struct {
	Score   int
	MaxTile int
	Moves   int
	Locked  bool
}

// New creates a game with an empty grid. The first Step spawns a tile.
func New(theme config.Theme, rng grid.Source) *Game {
	g := &Game{theme: theme, rng: rng}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.board = grid.Grid{}
	g.score = 0
	g.moves = 0
	g.moved = true
	g.locked = false
	g.lastDelta = 0
	g.lastScoreAt = time.Time{}
	g.recorded = false
	g.rounds++
}

// Theme returns the theme the game draws with.
func (g *Game) Theme() config.Theme {
	return g.theme
}

// Step advances the game by one frame.
//
// If the previous frame moved the board, a tile is spawned and the lock state
// recomputed. Then at most one direction is taken from the input, checked in
// the order Up, Down, Left, Right, and applied to the grid. A locked grid
// accepts no moves; Restart replaces it with a fresh one.
func (g *Game) Step(in core.InputFrame, now time.Time) grid.Outcome {
	g.tick++

	if g.locked && in.Has(core.ActionRestart) {
		g.reset()
	}

	if g.moved {
		grid.Spawn(&g.board, g.rng)
		g.locked = grid.Locked(&g.board)
	}

	dir, ok := direction(in)
	if !ok {
		g.moved = false
		return grid.NoMove
	}

	out := grid.Move(&g.board, dir)
	if out == grid.NoMove {
		g.moved = false
		return out
	}

	g.moved = true
	g.moves++
	if out.Gained > 0 {
		g.score += out.Gained
		g.lastDelta = out.Gained
		g.lastScoreAt = now
	}
	return out
}

// direction picks the first pressed direction in Up, Down, Left, Right order.
func direction(in core.InputFrame) (grid.Direction, bool) {
	if in.Empty() {
		return 0, false
	}
	switch {
	case in.Has(core.ActionUp):
		return grid.DirUp, true
	case in.Has(core.ActionDown):
		return grid.DirDown, true
	case in.Has(core.ActionLeft):
		return grid.DirLeft, true
	case in.Has(core.ActionRight):
		return grid.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Locked: g.locked,
		Moves:  g.moves,
	}
}

// Board returns a copy of the grid.
func (g *Game) Board() grid.Grid {
	return g.board
}

// Round returns the 1-based number of the current round. It grows on restart.
func (g *Game) Round() int {
	return g.rounds
}

// PendingResult hands out the current round's result at most once: as soon
// as the grid is locked, or when quitting with a non-zero score.
func (g *Game) PendingResult(quitting bool) (Result, bool) {
	if g.recorded {
		return Result{}, false
	}
	if !g.locked && !(quitting && g.score > 0) {
		return Result{}, false
	}
	g.recorded = true
	return g.result(), true
}

func (g *Game) result() Result {
	return Result{
		Score:   g.score,
		MaxTile: grid.Value(grid.MaxRank(&g.board)),
		Moves:   g.moves,
		Locked:  g.locked,
	}
}

// fadeAlpha returns the opacity of the score delta at time now: 1 right after
// a score increase, falling linearly to 0 over the theme's fade duration.
func (g *Game) fadeAlpha(now time.Time) float64 {
	if g.lastDelta == 0 || g.theme.Fade <= 0 {
		return 0
	}
	elapsed := now.Sub(g.lastScoreAt)
	return core.ClampF(float64(g.theme.Fade-elapsed)/float64(g.theme.Fade), 0, 1)
}
