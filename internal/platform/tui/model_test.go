package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/grid"
	"github.com/vovakirdan/t2048/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func smallConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Game = game.Config{Size: 2, Seed: seed, Rule: grid.ScoreExponential, Player: "tester"}
	return cfg
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// playOut cycles through all four directions until the board is terminal.
func playOut(t *testing.T, m Model) Model {
	t.Helper()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyUp},
	}
	for i := 0; i < 10000 && !m.Session().Finished(); i++ {
		m, _ = press(t, m, keys[i%len(keys)])
	}
	require.True(t, m.Session().Finished())
	return m
}

func TestModelArrowMovesBoard(t *testing.T) {
	m, err := NewModel(smallConfig(3), nil, nil)
	require.NoError(t, err)

	before := m.Session().MoveCount()
	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}} {
		m, _ = press(t, m, k)
	}
	assert.Greater(t, m.Session().MoveCount(), before)
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(smallConfig(1), nil, nil)
	require.NoError(t, err)

	m, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModelHelpToggle(t *testing.T) {
	m, err := NewModel(smallConfig(1), nil, nil)
	require.NoError(t, err)

	assert.False(t, m.help.ShowAll)
	m, _ = press(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	m, _ = press(t, m, runeKey('?'))
	assert.False(t, m.help.ShowAll)
}

func TestModelSavesOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	m, err := NewModel(smallConfig(42), store, nil)
	require.NoError(t, err)

	m = playOut(t, m)
	assert.True(t, m.saved)
	assert.Contains(t, m.View(), "Game Over! Your final score is")

	// Further input on a terminal board must not record again.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})

	records, err := store.TopScores(m.Session().Variant(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, m.Session().Board().Score(), records[0].Score)
	assert.Equal(t, "tester", records[0].Player)
	assert.Equal(t, m.Session().Moves(), records[0].MoveLog)
	assert.Equal(t, records[0].Score, m.best)
}

func TestModelRestart(t *testing.T) {
	m, err := NewModel(smallConfig(42), nil, nil)
	require.NoError(t, err)

	m = playOut(t, m)
	require.True(t, m.saved)

	m, _ = press(t, m, runeKey('r'))
	assert.False(t, m.saved)
	assert.Zero(t, m.Session().MoveCount())
	assert.Zero(t, m.Session().Board().Score())
	assert.False(t, m.Session().Finished())
}

func TestModelView(t *testing.T) {
	m, err := NewModel(smallConfig(5), nil, nil)
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Press 'r' to restart")
}

func TestModelInvalidSize(t *testing.T) {
	cfg := smallConfig(1)
	cfg.Game.Size = 42
	_, err := NewModel(cfg, nil, nil)
	require.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestRenderBoardUsesCellValues(t *testing.T) {
	g, err := grid.FromCells([][]grid.Rank{
		{1, 0},
		{0, 11},
	})
	require.NoError(t, err)

	out := RenderBoard(g)
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "2048")
	assert.Equal(t, 2, strings.Count(out, "."))
}

func TestRenderStatus(t *testing.T) {
	terminal, err := grid.FromCells([][]grid.Rank{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)
	assert.Contains(t, RenderStatus(terminal), "Game Over! Your final score is 0")

	playing, err := grid.FromCells([][]grid.Rank{
		{1, 1},
		{0, 0},
	})
	require.NoError(t, err)
	assert.Contains(t, RenderStatus(playing), "Score: 0")
}
