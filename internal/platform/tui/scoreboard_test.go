package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	recs := []storage.GameRecord{
		{Variant: "4x4/exponential", Player: "ann", Score: 1200, MaxTile: 128, Moves: 150},
		{Variant: "4x4/exponential", Player: "bob", Score: 3400, MaxTile: 256, Moves: 260},
		{Variant: "3x3/exponential", Player: "", Score: 300, MaxTile: 32, Moves: 40},
	}
	for _, r := range recs {
		r.Duration = time.Minute
		_, err := store.SaveGame(r)
		require.NoError(t, err)
	}
}

func TestScoreboardSelectsVariant(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "4x4/exponential", 120, 40)
	require.NoError(t, m.err)
	assert.Equal(t, []string{"3x3/exponential", "4x4/exponential"}, m.variants)
	assert.Equal(t, "4x4/exponential", m.currentVariant())

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "3400", rows[0][1])
	assert.Equal(t, "bob", rows[0][4])
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "", 60, 30)
	assert.Equal(t, "3x3/exponential", m.currentVariant())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "4x4/exponential", m.currentVariant())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "3x3/exponential", m.currentVariant())
	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0][4])

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "4x4/exponential", m.currentVariant())
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	assert.Empty(t, m.currentVariant())
	assert.Contains(t, m.View(), "No scores recorded yet.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestSSHSessionConfig(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig()}
	srv.config.Game.Seed = 99

	cfg := srv.sessionConfig("alice", 100, 30)
	assert.Equal(t, 100, cfg.ScreenW)
	assert.Equal(t, 30, cfg.ScreenH)
	assert.Equal(t, "alice", cfg.Game.Player)
	assert.Zero(t, cfg.Game.Seed)
	assert.Equal(t, srv.config.Game.Size, cfg.Game.Size)
}
