package grid

// Source supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// SpawnRank is the rank of every freshly spawned tile (face value 2).
const SpawnRank = 1

// Spawn places a rank-1 tile on a random empty cell.
// Coordinates are resampled until an empty cell turns up.
// A full board is left untouched and Spawn reports false.
func Spawn(g *Grid, rng Source) (Point, bool) {
	if Full(g) {
		return Point{}, false
	}

	for {
		p := Point{Row: rng.Intn(Size), Col: rng.Intn(Size)}
		if g[p.Row][p.Col] == 0 {
			g[p.Row][p.Col] = SpawnRank
			return p, true
		}
	}
}
