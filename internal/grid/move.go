package grid

// Outcome describes the effect of one move.
type Outcome struct {
	Cells   [][]Rank // grid after collapsing, before any spawn
	Points  int      // score gained from merges
	Merges  int      // number of merged pairs
	Changed bool     // whether any cell moved or merged
}

// collapseRow slides one logical row toward index 0 and merges equal
// neighbours. A merged tile is consumed and cannot merge again in the same
// pass, so [1 1 1 _] becomes [2 1 _ _]. It returns the new row, the ranks
// produced by merges, and whether any position differs from row.
func collapseRow(row []Rank) (out, merged []Rank, changed bool) {
	tiles := make([]Rank, 0, len(row)+1)
	for _, r := range row {
		if r != Empty {
			tiles = append(tiles, r)
		}
	}
	tiles = append(tiles, Empty) // sentinel

	out = make([]Rank, 0, len(row))
	for j := 0; j < len(tiles)-1; j++ {
		if tiles[j] == tiles[j+1] {
			out = append(out, tiles[j]+1)
			merged = append(merged, tiles[j]+1)
			j++
			continue
		}
		out = append(out, tiles[j])
	}
	for len(out) < len(row) {
		out = append(out, Empty)
	}

	for j := range row {
		if row[j] != out[j] {
			changed = true
			break
		}
	}
	return out, merged, changed
}

// collapse reduces every logical row of g under the current orientation,
// writing results back through the same mapping.
func (g *Grid) collapse() (points, merges int, changed bool) {
	row := make([]Rank, g.size)
	for i := 0; i < g.size; i++ {
		for j := range row {
			row[j] = g.get(i, j)
		}

		out, merged, rowChanged := collapseRow(row)
		for _, r := range merged {
			points += g.rule.Points(r)
		}
		merges += len(merged)
		if !rowChanged {
			continue
		}

		changed = true
		for j, r := range out {
			g.set(i, j, r)
		}
	}
	return points, merges, changed
}

// Move slides every tile in direction d. If anything moved or merged, the
// merge points are added to the score and one new tile is spawned. A move
// that changes nothing is a no-op: no spawn, no score, and Move returns false.
func (g *Grid) Move(d Direction) bool {
	g.orient = d
	points, _, changed := g.collapse()
	if !changed {
		return false
	}
	g.score += points
	g.spawnTile()
	return true
}

// Preview computes what Move(d) would do without spawning or touching g.
func (g *Grid) Preview(d Direction) Outcome {
	shadow := &Grid{
		size:   g.size,
		cells:  copyCells(g.cells),
		orient: d,
		rule:   g.rule,
	}
	points, merges, changed := shadow.collapse()
	return Outcome{
		Cells:   shadow.cells,
		Points:  points,
		Merges:  merges,
		Changed: changed,
	}
}

// CanMove reports whether some direction would change the grid.
func (g *Grid) CanMove() bool {
	for _, d := range Directions() {
		if g.Preview(d).Changed {
			return true
		}
	}
	return false
}
