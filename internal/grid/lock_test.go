package grid

import "testing"

func TestLocked(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		expected bool
	}{
		{
			name: "full with no equal neighbours",
			grid: Grid{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			expected: true,
		},
		{
			name: "full with horizontal pair",
			grid: Grid{
				{1, 1, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 16},
			},
			expected: false,
		},
		{
			name: "full with vertical pair in last column",
			grid: Grid{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 12},
			},
			expected: false,
		},
		{
			name: "diagonal equals do not count",
			grid: Grid{
				{1, 2, 3, 4},
				{2, 1, 4, 3},
				{3, 4, 1, 2},
				{4, 3, 2, 1},
			},
			expected: true,
		},
		{
			name: "one empty cell",
			grid: Grid{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 0, 2},
				{2, 1, 2, 1},
			},
			expected: false,
		},
		{
			name:     "empty grid",
			grid:     Grid{},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Locked(&tc.grid); got != tc.expected {
				t.Errorf("Locked() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestLockedGridRejectsEveryMove(t *testing.T) {
	g := Grid{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}

	for _, dir := range Directions {
		before := g
		if out := Move(&g, dir); out != NoMove {
			t.Errorf("Move(%s) on locked grid = %+v, want NoMove", dir, out)
		}
		if g != before {
			t.Errorf("Move(%s) changed a locked grid", dir)
		}
	}
}
