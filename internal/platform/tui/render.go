package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/game"
)

const minCellWidth = 4

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Center)
	emptyStyle  = lipgloss.NewStyle().Align(lipgloss.Center).Foreground(lipgloss.Color("240"))
	scoreStyle  = lipgloss.NewStyle().Bold(true)
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	tipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// cellWidth returns the column width wide enough for the largest tile on b.
func cellWidth(b game.Board) int {
	w := len(b.MaxRank().String())
	if w < minCellWidth {
		w = minCellWidth
	}
	return w + 2
}

// RenderBoard draws the grid inside a rounded frame. Only CellAt is used to
// read tiles, so any game.Board can be drawn.
func RenderBoard(b game.Board) string {
	w := cellWidth(b)
	n := b.Size()

	rows := make([]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			r := b.CellAt(i, j)
			if r.IsEmpty() {
				cells[j] = emptyStyle.Width(w).Render(r.String())
				continue
			}
			cells[j] = cellStyle.Width(w).Render(r.String())
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// RenderStatus returns the score line, or the final message once the board
// is terminal.
func RenderStatus(b game.Board) string {
	if b.IsTerminal() {
		return overStyle.Render(fmt.Sprintf("Game Over! Your final score is %d", b.Score()))
	}
	return scoreStyle.Render(fmt.Sprintf("Score: %d", b.Score()))
}

// RenderTip returns the one-line restart/quit reminder.
func RenderTip() string {
	return tipStyle.Render("Press 'r' to restart at any time; press 'q' to quit")
}
