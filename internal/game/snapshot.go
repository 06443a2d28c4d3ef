package game

import "github.com/vovakirdan/tile2048/internal/grid"

// Snapshot captures the complete loop state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Round     int
	Score     int
	Moves     int
	Board     grid.Grid
	MaxTile   int
	Locked    bool
	Moved     bool
	LastDelta int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Round:     g.rounds,
		Score:     g.score,
		Moves:     g.moves,
		Board:     g.board,
		MaxTile:   grid.Value(grid.MaxRank(&g.board)),
		Locked:    g.locked,
		Moved:     g.moved,
		LastDelta: g.lastDelta,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Round)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Moves)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastDelta) //#nosec G115 -- hash computation
	if snap.Locked {
		h = h*31 + 1
	}
	if snap.Moved {
		h = h*31 + 2
	}
	for row := range grid.Size {
		for col := range grid.Size {
			h = h*31 + uint64(snap.Board[row][col]) //#nosec G115 -- hash computation
		}
	}
	return h
}
