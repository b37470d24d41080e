package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim l", runeKey('l'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"wasd a", runeKey('a'), core.ActionLeft},
		{"wasd d", runeKey('d'), core.ActionRight},
		{"wasd w", runeKey('w'), core.ActionUp},
		{"wasd s", runeKey('s'), core.ActionDown},
		{"restart", runeKey('r'), core.ActionRestart},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit q", runeKey('q'), core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 3)

	full := keys.FullHelp()
	assert.Len(t, full, 2)
	assert.Len(t, full[0], 4)
}
