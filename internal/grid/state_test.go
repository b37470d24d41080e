package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    [][]Rank
		expected bool
	}{
		{
			name: "full board without equal neighbours",
			board: [][]Rank{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 16},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			board: [][]Rank{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			expected: true,
		},
		{
			name: "horizontal pair",
			board: [][]Rank{
				{1, 1, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 16},
			},
			expected: false,
		},
		{
			name: "vertical pair in last column",
			board: [][]Rank{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 12},
			},
			expected: false,
		},
		{
			name: "empty cell",
			board: [][]Rank{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 0, 12},
				{13, 14, 15, 16},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromCells(tt.board)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, g.IsTerminal())

			want := StatePlaying
			if tt.expected {
				want = StateTerminal
			}
			assert.Equal(t, want, g.State())
		})
	}
}

// TestIsTerminalExhaustive checks that the adjacency rule agrees with actually
// trying every direction, for every small grid.
func TestIsTerminalExhaustive(t *testing.T) {
	tests := []struct {
		size  int
		ranks []Rank
	}{
		{size: 2, ranks: []Rank{Empty, 1, 2, 3}},
		{size: 3, ranks: []Rank{Empty, 1, 2}},
	}

	for _, tt := range tests {
		cellCount := tt.size * tt.size
		total := 1
		for n := 0; n < cellCount; n++ {
			total *= len(tt.ranks)
		}

		checked := 0
		for code := 0; code < total; code++ {
			cells := makeCells(tt.size)
			c := code
			occupied := false
			for k := 0; k < cellCount; k++ {
				r := tt.ranks[c%len(tt.ranks)]
				c /= len(tt.ranks)
				cells[k/tt.size][k%tt.size] = r
				occupied = occupied || r != Empty
			}
			if !occupied {
				// The all-empty grid never occurs in play.
				continue
			}

			g, err := FromCells(cells)
			require.NoError(t, err)
			require.Equal(t, !g.CanMove(), g.IsTerminal(), "grid:\n%s", g)
			checked++
		}
		assert.Equal(t, total-1, checked)
	}
}

func TestTerminalIsAbsorbing(t *testing.T) {
	src := NewScriptedSource()
	g, err := FromCells([][]Rank{
		{1, 2, 1},
		{2, 1, 2},
		{1, 2, 1},
	}, WithSource(src))
	require.NoError(t, err)
	require.True(t, g.IsTerminal())

	before := g.Snapshot()
	for _, d := range Directions() {
		assert.False(t, g.Move(d))
	}
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, StateTerminal, g.State())
}

func TestSnapshot(t *testing.T) {
	g, err := FromCells([][]Rank{
		{1, 1},
		{0, 3},
	}, WithScoreRule(ScoreRank))
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Size)
	assert.Equal(t, 3, snap.Tiles)
	assert.Equal(t, Rank(3), snap.MaxRank)
	assert.Equal(t, ScoreRank, snap.Rule)
	assert.Equal(t, StatePlaying, snap.State)

	snap.Cells[0][0] = 7
	assert.Equal(t, Rank(1), g.CellAt(0, 0))
}
