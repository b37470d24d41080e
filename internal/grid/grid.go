package grid

import (
	"fmt"
	"time"
)

// Grid size limits. Ranks on an N×N grid stay below N*N+2, which keeps
// exponential scores inside an int for every allowed size.
const (
	MinSize     = 2
	MaxSize     = 8
	DefaultSize = 4
)

// Grid is one 2048 board: the tile matrix, the score and the random source
// used for spawns. A Grid is not safe for concurrent use.
type Grid struct {
	size   int
	cells  [][]Rank
	score  int
	orient Direction // set by every Move, read by get/set
	src    Source
	rule   ScoreRule
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithSeed seeds the spawn source deterministically.
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.src = NewSource(seed)
	}
}

// WithSource uses src for every spawn draw.
func WithSource(src Source) Option {
	return func(g *Grid) {
		g.src = src
	}
}

// WithScoreRule selects how merges are scored (default ScoreExponential).
func WithScoreRule(rule ScoreRule) Option {
	return func(g *Grid) {
		g.rule = rule
	}
}

// New creates a size×size grid and seeds it with 2 or 3 random tiles.
// Without WithSeed or WithSource the spawn source is seeded from the clock.
func New(size int, opts ...Option) (*Grid, error) {
	g, err := newEmpty(size, opts)
	if err != nil {
		return nil, err
	}
	g.Reset()
	return g, nil
}

// FromCells builds a grid from an explicit row-major matrix without seeding
// tiles. The matrix is copied.
func FromCells(cells [][]Rank, opts ...Option) (*Grid, error) {
	g, err := newEmpty(len(cells), opts)
	if err != nil {
		return nil, err
	}
	for i, row := range cells {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidCells, i, len(row), g.size)
		}
		copy(g.cells[i], row)
	}
	return g, nil
}

// newEmpty validates size and applies options.
func newEmpty(size int, opts []Option) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	g := &Grid{
		size:  size,
		cells: makeCells(size),
		rule:  ScoreExponential,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewSource(time.Now().UnixNano())
	}
	return g, nil
}

// Reset empties the grid, zeroes the score and seeds 2 or 3 new tiles.
// The spawn source keeps its position, so a seeded grid stays reproducible.
func (g *Grid) Reset() {
	for i := range g.cells {
		clear(g.cells[i])
	}
	g.score = 0
	g.orient = Left

	seeds := 2 + g.src.Intn(2)
	for s := 0; s < seeds; s++ {
		g.spawnTile()
	}
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// Score returns the accumulated score.
func (g *Grid) Score() int {
	return g.score
}

// Rule returns the score rule in effect.
func (g *Grid) Rule() ScoreRule {
	return g.rule
}

// CellAt returns the rank at physical row i, column j.
// Out-of-range coordinates read as Empty.
func (g *Grid) CellAt(i, j int) Rank {
	if i < 0 || i >= g.size || j < 0 || j >= g.size {
		return Empty
	}
	return g.cells[i][j]
}

// Cells returns a copy of the matrix in row-major order.
func (g *Grid) Cells() [][]Rank {
	return copyCells(g.cells)
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for _, row := range g.cells {
		for _, r := range row {
			if r != Empty {
				n++
			}
		}
	}
	return n
}

// MaxRank returns the highest rank on the grid, or Empty if it has no tiles.
func (g *Grid) MaxRank() Rank {
	maxRank := Empty
	for _, row := range g.cells {
		for _, r := range row {
			if r > maxRank {
				maxRank = r
			}
		}
	}
	return maxRank
}

// get reads logical (i, j) through the current orientation.
func (g *Grid) get(i, j int) Rank {
	pi, pj := g.orient.physical(g.size-1, i, j)
	return g.cells[pi][pj]
}

// set writes logical (i, j) through the current orientation.
func (g *Grid) set(i, j int, r Rank) {
	pi, pj := g.orient.physical(g.size-1, i, j)
	g.cells[pi][pj] = r
}

func makeCells(size int) [][]Rank {
	cells := make([][]Rank, size)
	for i := range cells {
		cells[i] = make([]Rank, size)
	}
	return cells
}

func copyCells(src [][]Rank) [][]Rank {
	dst := make([][]Rank, len(src))
	for i, row := range src {
		dst[i] = append([]Rank(nil), row...)
	}
	return dst
}
