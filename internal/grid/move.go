package grid

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in input priority order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Outcome is the result of a move.
// The zero value is NoMove: no tile changed position or rank. A move that
// slid tiles without merging anything reports Moved with Gained == 0.
type Outcome struct {
	Moved  bool
	Gained int // Sum of 2^rank over every merge performed
}

// NoMove is the outcome of a move that left the board unchanged.
var NoMove = Outcome{}

// MoveUp slides every column towards row 0.
func MoveUp(g *Grid) Outcome {
	return Move(g, DirUp)
}

// MoveDown slides every column towards the last row.
func MoveDown(g *Grid) Outcome {
	return Move(g, DirDown)
}

// MoveLeft slides every row towards column 0.
func MoveLeft(g *Grid) Outcome {
	return Move(g, DirLeft)
}

// MoveRight slides every row towards the last column.
func MoveRight(g *Grid) Outcome {
	return Move(g, DirRight)
}

// Move slides and merges all tiles in the given direction, mutating g in place.
func Move(g *Grid, dir Direction) Outcome {
	var out Outcome
	for i := range Size {
		line, ok := lineOf(g, dir, i)
		if !ok {
			return NoMove
		}
		moved, gained := collapse(line)
		out.Moved = out.Moved || moved
		out.Gained += gained
	}
	if !out.Moved {
		return NoMove
	}
	return out
}

// lineOf returns the i-th line for dir with its cells ordered from the
// leading edge inward. For down and right both ends are walked in decreasing
// index order so gravity points at the far edge.
func lineOf(g *Grid, dir Direction, i int) ([Size]*int, bool) {
	var line [Size]*int
	for k := range Size {
		switch dir {
		case DirUp:
			line[k] = &g[k][i]
		case DirDown:
			line[k] = &g[Size-1-k][i]
		case DirLeft:
			line[k] = &g[i][k]
		case DirRight:
			line[k] = &g[i][Size-1-k]
		default:
			return line, false
		}
	}
	return line, true
}

// collapse applies one move to a single line.
// Each destination, nearest the edge first, scans the cells behind it:
// empty cells are skipped, a tile slides into an empty destination and the
// scan goes on, an equal tile merges and ends the scan, any other tile
// blocks. Ending the scan on merge is what keeps a tile from merging twice.
func collapse(line [Size]*int) (moved bool, gained int) {
	for dst := range Size {
		d := line[dst]
	scan:
		for src := dst + 1; src < Size; src++ {
			s := line[src]
			if *s == 0 {
				continue
			}

			switch {
			case *s == *d:
				*d++
				*s = 0
				gained += Value(*d)
				moved = true
				break scan
			case *d == 0:
				*d = *s
				*s = 0
				moved = true
			default:
				break scan
			}
		}
	}
	return moved, gained
}
