package grid

// spawnOutcomes is the size of the rank draw: outcomes below rank1Outcomes
// give rank 1, the rest give rank 2 (P(rank 1) = 3/4).
const (
	spawnOutcomes = 4
	rank1Outcomes = 3
)

type position struct {
	row, col int
}

// emptyCells returns every empty cell in row-major order.
func (g *Grid) emptyCells() []position {
	var cells []position
	for i, row := range g.cells {
		for j, r := range row {
			if r == Empty {
				cells = append(cells, position{i, j})
			}
		}
	}
	return cells
}

// spawnTile places a rank 1 or rank 2 tile on a random empty cell.
// It returns false, leaving the grid untouched, when the board is full.
func (g *Grid) spawnTile() bool {
	empty := g.emptyCells()
	if len(empty) == 0 {
		return false
	}

	rank := Rank(1)
	if g.src.Intn(spawnOutcomes) >= rank1Outcomes {
		rank = 2
	}

	pos := empty[g.src.Intn(len(empty))]
	g.cells[pos.row][pos.col] = rank
	return true
}
