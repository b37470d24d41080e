package autoplay

import (
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/grid"
)

func init() {
	Register("random", func(seed int64) Policy {
		return &randomPolicy{src: grid.NewSource(seed)}
	})
	Register("greedy", func(int64) Policy {
		return greedyPolicy{}
	})
	Register("corner", func(int64) Policy {
		return cornerPolicy{}
	})
}

// randomPolicy plays a uniformly random direction among those that change
// the board.
type randomPolicy struct {
	src grid.Source
}

func (p *randomPolicy) Name() string { return "random" }

func (p *randomPolicy) Choose(b game.Board) (grid.Direction, bool) {
	var legal []grid.Direction
	for _, d := range grid.Directions() {
		if b.Preview(d).Changed {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return grid.Left, false
	}
	return legal[p.src.Intn(len(legal))], true
}

// greedyPolicy maximises the points of the next move, breaking ties by the
// number of empty cells left and then by direction order.
type greedyPolicy struct{}

func (greedyPolicy) Name() string { return "greedy" }

func (greedyPolicy) Choose(b game.Board) (grid.Direction, bool) {
	best := grid.Left
	bestPoints, bestEmpty := -1, -1
	found := false

	for _, d := range grid.Directions() {
		out := b.Preview(d)
		if !out.Changed {
			continue
		}
		empty := countEmpty(out.Cells)
		if out.Points > bestPoints || (out.Points == bestPoints && empty > bestEmpty) {
			best, bestPoints, bestEmpty = d, out.Points, empty
			found = true
		}
	}
	return best, found
}

// cornerPolicy keeps tiles packed into the bottom-left corner by trying
// directions in a fixed preference order.
type cornerPolicy struct{}

var cornerOrder = []grid.Direction{grid.Down, grid.Left, grid.Right, grid.Up}

func (cornerPolicy) Name() string { return "corner" }

func (cornerPolicy) Choose(b game.Board) (grid.Direction, bool) {
	for _, d := range cornerOrder {
		if b.Preview(d).Changed {
			return d, true
		}
	}
	return grid.Left, false
}

func countEmpty(cells [][]grid.Rank) int {
	n := 0
	for _, row := range cells {
		for _, r := range row {
			if r.IsEmpty() {
				n++
			}
		}
	}
	return n
}
