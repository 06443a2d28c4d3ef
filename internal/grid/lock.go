package grid

// neighbours are the 4-adjacent offsets (up, down, left, right).
var neighbours = [4]Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Locked returns true if the board is full and no two 4-adjacent cells share
// a rank, i.e. no move in any direction can change the board.
func Locked(g *Grid) bool {
	if !Full(g) {
		return false
	}

	for row := range Size {
		for col := range Size {
			for _, d := range neighbours {
				other := Point{Row: row + d.Row, Col: col + d.Col}
				if InBounds(other) && g[row][col] == g[other.Row][other.Col] {
					return false
				}
			}
		}
	}
	return true
}
