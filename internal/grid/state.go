package grid

import (
	"strings"
)

// State is the engine's play state.
type State string

const (
	StatePlaying  State = "playing"
	StateTerminal State = "terminal"
)

// IsTerminal reports whether no move can change the grid: there is no empty
// cell and no two horizontally or vertically adjacent cells hold equal ranks.
func (g *Grid) IsTerminal() bool {
	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			r := g.cells[i][j]
			if r == Empty {
				return false
			}
			// Check right neighbour
			if j < g.size-1 && g.cells[i][j+1] == r {
				return false
			}
			// Check bottom neighbour
			if i < g.size-1 && g.cells[i+1][j] == r {
				return false
			}
		}
	}
	return true
}

// State returns StateTerminal once no move is possible.
func (g *Grid) State() State {
	if g.IsTerminal() {
		return StateTerminal
	}
	return StatePlaying
}

// Snapshot captures the observable grid state for display, logging and
// determinism checks.
type Snapshot struct {
	Size    int
	Score   int
	Rule    ScoreRule
	Cells   [][]Rank
	Tiles   int
	MaxRank Rank
	State   State
}

// Snapshot returns a copy of the current state.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Size:    g.size,
		Score:   g.score,
		Rule:    g.rule,
		Cells:   g.Cells(),
		Tiles:   g.TileCount(),
		MaxRank: g.MaxRank(),
		State:   g.State(),
	}
}

// String prints the grid one row per line with right-aligned tile values.
func (g *Grid) String() string {
	width := len(g.MaxRank().String())

	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, r := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			s := r.String()
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
