package grid

import (
	"fmt"
	"strings"
)

// orientation selects which grid edge acts as "left" for the collapse.
type orientation uint8

const (
	orientLeft orientation = iota
	orientRight
	orientUp
	orientDown
)

// Direction is one of the four slide directions. The field is unexported, so
// code outside this package can only use Left, Right, Up and Down (the zero
// value is Left).
type Direction struct {
	o orientation
}

// The four slide directions.
var (
	Left  = Direction{orientLeft}
	Right = Direction{orientRight}
	Up    = Direction{orientUp}
	Down  = Direction{orientDown}
)

// Directions lists every direction in a fixed order.
func Directions() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d.o {
	case orientRight:
		return "right"
	case orientUp:
		return "up"
	case orientDown:
		return "down"
	default:
		return "left"
	}
}

// Letter returns the single-letter move code used in move logs (L, R, U, D).
func (d Direction) Letter() byte {
	switch d.o {
	case orientRight:
		return 'R'
	case orientUp:
		return 'U'
	case orientDown:
		return 'D'
	default:
		return 'L'
	}
}

// ParseDirection accepts a direction name ("left") or letter ("L"),
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	}
	return Left, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// physical maps logical (i, j) to a physical (row, col) on a grid whose last
// index is n. Logical row i is always collapsed toward j = 0.
//
//	left  (i, j)
//	right (n-i, n-j)
//	up    (j, n-i)
//	down  (n-j, i)
func (d Direction) physical(n, i, j int) (int, int) {
	switch d.o {
	case orientRight:
		return n - i, n - j
	case orientUp:
		return j, n - i
	case orientDown:
		return n - j, i
	default:
		return i, j
	}
}
