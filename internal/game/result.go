package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/t2048/internal/grid"
)

// Result summarises a session for storage and reporting.
type Result struct {
	Variant    string
	Player     string
	Seed       int64
	Score      int
	MaxTile    int // Displayed value of the highest tile
	Moves      int
	MoveLog    string
	Terminal   bool
	Duration   time.Duration
	FinishedAt time.Time
}

// Result captures the current session state.
func (s *Session) Result() Result {
	now := time.Now()
	return Result{
		Variant:    s.Variant(),
		Player:     s.cfg.Player,
		Seed:       s.seed,
		Score:      s.grid.Score(),
		MaxTile:    s.grid.MaxRank().Value(),
		Moves:      s.moveCount,
		MoveLog:    s.Moves(),
		Terminal:   s.grid.IsTerminal(),
		Duration:   now.Sub(s.startedAt),
		FinishedAt: now,
	}
}

// Replay rebuilds a session from an exact seed and a move log. Moves that do
// not change the board are skipped, so hand-written logs are accepted.
// Unknown move letters fail with grid.ErrInvalidDirection.
func Replay(cfg Config, moves string) (*Session, error) {
	if cfg.Size == 0 {
		cfg.Size = grid.DefaultSize
	}

	s := &Session{cfg: cfg}
	if err := s.start(cfg.Seed); err != nil {
		return nil, err
	}

	for i, c := range moves {
		if c == ' ' || c == ',' || c == '\n' {
			continue
		}
		d, err := grid.ParseDirection(string(c))
		if err != nil {
			return nil, fmt.Errorf("game: move %d: %w", i, err)
		}
		s.Apply(d)
	}
	return s, nil
}
