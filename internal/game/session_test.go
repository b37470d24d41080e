package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/grid"
)

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(Config{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, grid.DefaultSize, s.Board().Size())
	assert.Equal(t, int64(42), s.Seed())
	assert.Equal(t, "4x4/exponential", s.Variant())
	assert.Empty(t, s.Moves())
	assert.False(t, s.Finished())
}

func TestNewSessionRandomSeed(t *testing.T) {
	s, err := NewSession(Config{Size: 3})
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
}

func TestNewSessionInvalidSize(t *testing.T) {
	_, err := NewSession(Config{Size: 20})
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestApplyLogsOnlyChangingMoves(t *testing.T) {
	s, err := NewSession(Config{Seed: 9})
	require.NoError(t, err)

	applied := 0
	for _, d := range []grid.Direction{grid.Left, grid.Left, grid.Left, grid.Up, grid.Up, grid.Right} {
		if s.Apply(d) {
			applied++
		}
	}

	assert.Equal(t, applied, s.MoveCount())
	assert.Len(t, s.Moves(), applied)
	for _, c := range s.Moves() {
		assert.Contains(t, "LRUD", string(c))
	}
}

func TestReplayReproducesSession(t *testing.T) {
	cfg := Config{Size: 4, Seed: 2048, Rule: grid.ScoreExponential}
	s, err := NewSession(cfg)
	require.NoError(t, err)

	dirs := grid.Directions()
	src := grid.NewSource(1)
	for k := 0; k < 300; k++ {
		if s.Finished() {
			break
		}
		s.Apply(dirs[src.Intn(len(dirs))])
	}

	replayed, err := Replay(cfg, s.Moves())
	require.NoError(t, err)

	assert.Equal(t, s.Board().Snapshot(), replayed.Board().Snapshot())
	assert.Equal(t, s.Moves(), replayed.Moves())
}

func TestReplaySkipsSeparatorsAndNoOps(t *testing.T) {
	cfg := Config{Size: 4, Seed: 5}
	a, err := Replay(cfg, "L L, U\nD")
	require.NoError(t, err)
	b, err := Replay(cfg, "LLUD")
	require.NoError(t, err)

	assert.Equal(t, a.Board().Snapshot(), b.Board().Snapshot())
	assert.LessOrEqual(t, a.MoveCount(), 4)
}

func TestReplayInvalidMove(t *testing.T) {
	_, err := Replay(Config{Seed: 1}, "LRX")
	assert.ErrorIs(t, err, grid.ErrInvalidDirection)
}

func TestRestart(t *testing.T) {
	s, err := NewSession(Config{Seed: 11})
	require.NoError(t, err)
	for _, d := range grid.Directions() {
		s.Apply(d)
	}

	require.NoError(t, s.Restart(77))
	assert.Equal(t, int64(77), s.Seed())
	assert.Zero(t, s.MoveCount())
	assert.Zero(t, s.Board().Score())

	fresh, err := NewSession(Config{Seed: 77})
	require.NoError(t, err)
	assert.Equal(t, fresh.Board().Snapshot(), s.Board().Snapshot())
}

func TestResult(t *testing.T) {
	s, err := NewSession(Config{Size: 3, Seed: 3, Rule: grid.ScoreRank, Player: "alice"})
	require.NoError(t, err)
	s.Apply(grid.Down)
	s.Apply(grid.Left)

	r := s.Result()
	assert.Equal(t, "3x3/rank", r.Variant)
	assert.Equal(t, "alice", r.Player)
	assert.Equal(t, int64(3), r.Seed)
	assert.Equal(t, s.Board().Score(), r.Score)
	assert.Equal(t, s.Board().MaxRank().Value(), r.MaxTile)
	assert.Equal(t, s.MoveCount(), r.Moves)
	assert.Equal(t, s.Moves(), r.MoveLog)
	assert.False(t, r.FinishedAt.IsZero())
}

func TestParseVariant(t *testing.T) {
	size, rule, err := ParseVariant(Variant(5, grid.ScoreRank))
	require.NoError(t, err)
	assert.Equal(t, 5, size)
	assert.Equal(t, grid.ScoreRank, rule)

	for _, bad := range []string{"", "4x4", "4x3/exponential", "ax a/exponential", "4x4/"} {
		_, _, err := ParseVariant(bad)
		assert.Error(t, err, bad)
	}

	_, _, err = ParseVariant("4x4/fibonacci")
	require.ErrorIs(t, err, grid.ErrInvalidScoreRule)
}
