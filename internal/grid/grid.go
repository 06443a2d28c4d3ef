// Package grid implements the 2048 board: spawning tiles, sliding and
// merging them in four directions, and detecting the locked state.
//
// Cells hold a rank rather than a face value. A rank r > 0 is a tile showing
// 2^r; rank 0 is an empty cell.
package grid

import "fmt"

// Size is the board dimension. It is fixed.
const Size = 4

// Grid is the 4x4 board, indexed as g[row][col].
type Grid [Size][Size]int

// Point addresses a single cell.
type Point struct {
	Row, Col int
}

// String returns "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether p addresses a cell on the board.
func InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Value returns the face value of a tile with the given rank, or 0 for an
// empty cell.
func Value(rank int) int {
	if rank <= 0 {
		return 0
	}
	return 1 << rank
}

// Full returns true if no cell is empty.
func Full(g *Grid) bool {
	return EmptyCount(g) == 0
}

// EmptyCount returns the number of empty cells.
func EmptyCount(g *Grid) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if g[row][col] == 0 {
				n++
			}
		}
	}
	return n
}

// MaxRank returns the highest rank on the board (0 for an empty board).
func MaxRank(g *Grid) int {
	maxRank := 0
	for row := range Size {
		for col := range Size {
			if g[row][col] > maxRank {
				maxRank = g[row][col]
			}
		}
	}
	return maxRank
}
