package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Model is the Bubble Tea model for one 2048 session.
// It only reads the board through game.Board and forwards moves to the session.
type Model struct {
	session  *game.Session
	store    *storage.Store
	logger   *log.Logger
	keys     *KeyMapper
	help     help.Model
	width    int
	height   int
	best     int
	notice   string
	saved    bool // Whether the current game's result has been recorded
	quitting bool
}

// NewModel creates a Bubble Tea model with a freshly seeded session.
// store and logger may be nil.
func NewModel(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := game.NewSession(cfg.Game)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		session: session,
		store:   store,
		logger:  logger,
		keys:    NewKeyMapper(),
		help:    help.New(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.loadBest()

	logger.Debug("game started", "variant", session.Variant(), "seed", session.Seed())
	return m, nil
}

// Session returns the session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if err := m.session.Restart(0); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.saved = false
		m.notice = ""
		m.logger.Debug("game restarted", "variant", m.session.Variant(), "seed", m.session.Seed())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	default:
		d, ok := action.Direction()
		if !ok {
			return m, nil
		}
		if m.session.Apply(d) && m.session.Finished() {
			m.saveResult()
		}
	}

	return m, nil
}

// saveResult records the finished game once. Storage failures are logged
// and shown but never end the session.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	res := m.session.Result()
	m.logger.Info("game over",
		"variant", res.Variant,
		"player", res.Player,
		"score", res.Score,
		"max_tile", res.MaxTile,
		"moves", res.Moves,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGame(storage.RecordFromResult(res)); err != nil {
		m.logger.Warn("could not save result", "error", err)
		m.notice = "score not saved"
		return
	}
	if res.Score > m.best {
		m.notice = "new high score!"
	}
	m.loadBest()
}

// loadBest refreshes the best recorded score for the session's variant.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.session.Variant())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := m.session.Board()
	status := RenderStatus(board)
	if m.store != nil {
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, tipStyle.Render(fmt.Sprintf("   best %d", m.best)))
	}

	parts := []string{status, "", RenderBoard(board), ""}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, RenderTip(), tipStyle.Render(m.help.View(m.keys.Keys())))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model, err := NewModel(cfg, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
