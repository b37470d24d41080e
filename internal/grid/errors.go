package grid

import "errors"

// Errors returned by the grid package.
var (
	ErrInvalidSize      = errors.New("grid: invalid size")
	ErrInvalidCells     = errors.New("grid: invalid cells")
	ErrInvalidDirection = errors.New("grid: invalid direction")
	ErrInvalidScoreRule = errors.New("grid: invalid score rule")
)
