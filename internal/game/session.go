// Package game wraps a grid.Grid into a play session: it owns the seed, the
// score rule and the log of moves that changed the board, so finished games
// can be recorded and replayed.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/t2048/internal/grid"
)

// Config describes how a session builds its grid.
type Config struct {
	Size   int            // Grid dimension (default grid.DefaultSize)
	Seed   int64          // RNG seed; 0 means derive from the clock
	Rule   grid.ScoreRule // Merge scoring rule
	Player string         // Who is playing (user name, policy name)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Size: grid.DefaultSize,
		Rule: grid.ScoreExponential,
	}
}

// Board is the read-only view of a grid handed to renderers and policies.
type Board interface {
	Size() int
	CellAt(i, j int) grid.Rank
	Score() int
	IsTerminal() bool
	MaxRank() grid.Rank
	TileCount() int
	Preview(d grid.Direction) grid.Outcome
	Snapshot() grid.Snapshot
	String() string
}

var _ Board = (*grid.Grid)(nil)

// Session is one game in progress. Restarting discards the grid and builds a
// fresh one.
type Session struct {
	cfg       Config
	seed      int64
	grid      *grid.Grid
	moves     strings.Builder
	moveCount int
	startedAt time.Time
}

// NewSession creates a session and its seeded grid.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Size == 0 {
		cfg.Size = grid.DefaultSize
	}

	s := &Session{cfg: cfg}
	if err := s.start(resolveSeed(cfg.Seed)); err != nil {
		return nil, err
	}
	return s, nil
}

// start builds a new grid from seed and clears the move log.
func (s *Session) start(seed int64) error {
	g, err := grid.New(s.cfg.Size, grid.WithSeed(seed), grid.WithScoreRule(s.cfg.Rule))
	if err != nil {
		return fmt.Errorf("game: cannot create grid: %w", err)
	}

	s.seed = seed
	s.grid = g
	s.moves.Reset()
	s.moveCount = 0
	s.startedAt = time.Now()
	return nil
}

// resolveSeed turns the "0 = random" convention into a concrete seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Board returns the read-only view of the current grid.
func (s *Session) Board() Board {
	return s.grid
}

// Apply slides the board in direction d. Only moves that change the board
// are logged. It returns whether the board changed.
func (s *Session) Apply(d grid.Direction) bool {
	if !s.grid.Move(d) {
		return false
	}
	s.moves.WriteByte(d.Letter())
	s.moveCount++
	return true
}

// Restart discards the grid and starts a new game. A zero seed picks a fresh
// one from the clock.
func (s *Session) Restart(seed int64) error {
	return s.start(resolveSeed(seed))
}

// Finished reports whether the board has reached the terminal state.
func (s *Session) Finished() bool {
	return s.grid.IsTerminal()
}

// Seed returns the seed of the current grid.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Moves returns the encoded move log (one letter per move: L, R, U, D).
func (s *Session) Moves() string {
	return s.moves.String()
}

// MoveCount returns how many board-changing moves were applied.
func (s *Session) MoveCount() int {
	return s.moveCount
}

// Variant returns the leaderboard key for this session's size and rule.
func (s *Session) Variant() string {
	return Variant(s.cfg.Size, s.cfg.Rule)
}

// Variant builds the leaderboard key for a grid size and score rule,
// e.g. "4x4/exponential".
func Variant(size int, rule grid.ScoreRule) string {
	return fmt.Sprintf("%dx%d/%s", size, size, rule)
}

// ErrInvalidVariant is returned for leaderboard keys ParseVariant cannot read.
var ErrInvalidVariant = errors.New("invalid variant")

// ParseVariant is the inverse of Variant.
func ParseVariant(v string) (size int, rule grid.ScoreRule, err error) {
	dims, ruleName, ok := strings.Cut(v, "/")
	if !ok || ruleName == "" {
		return 0, 0, fmt.Errorf("game: %w: %q", ErrInvalidVariant, v)
	}
	w, h, ok := strings.Cut(dims, "x")
	if !ok || w != h {
		return 0, 0, fmt.Errorf("game: %w: %q", ErrInvalidVariant, v)
	}
	size, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("game: %w: %q", ErrInvalidVariant, v)
	}
	rule, err = grid.ParseScoreRule(ruleName)
	if err != nil {
		return 0, 0, fmt.Errorf("game: %w", err)
	}
	return size, rule, nil
}
