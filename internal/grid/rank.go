package grid

import "strconv"

// Rank is the exponent of a tile: a tile of rank r displays 2^r.
// Empty is the absence of a tile, not a tile of rank 0.
type Rank uint8

// Empty marks a cell without a tile.
const Empty Rank = 0

// IsEmpty reports whether the cell holds no tile.
func (r Rank) IsEmpty() bool {
	return r == Empty
}

// Value returns the displayed tile number (2^r), or 0 for Empty.
func (r Rank) Value() int {
	if r == Empty {
		return 0
	}
	return 1 << r
}

// String returns the displayed value, or "." for an empty cell.
func (r Rank) String() string {
	if r == Empty {
		return "."
	}
	return strconv.Itoa(r.Value())
}
