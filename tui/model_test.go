package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/retroenv/retrogolib/assert"

	"simonsays/game"
	"simonsays/theme"
)

func testModel() Model {
	screen := NewScreen()
	sampler := NewSampler(time.Hour, 0, screen.Notify)
	return NewModel(screen, sampler, theme.ForName("classic"))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_KeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected game.Key
	}{
		{"vim up", "k", game.KeyUp},
		{"vim down", "j", game.KeyDown},
		{"vim left", "h", game.KeyLeft},
		{"vim right", "l", game.KeyRight},
		{"arrow up", "up", game.KeyUp},
		{"enter is select", "enter", game.KeySelect},
		{"space is select", " ", game.KeySelect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			m.Update(keyMsg(tt.key))
			assert.Equal(t, tt.expected, m.Sampler.Active())
		})
	}
}

func TestModel_Quit(t *testing.T) {
	m := testModel()
	updated, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", updated.View())
}

func TestModel_UpdateMsgKeepsListening(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(UpdateMsg{})
	assert.NotNil(t, cmd)
}

func TestModel_ViewShowsScreen(t *testing.T) {
	m := testModel()
	m.Screen.ShowAt(0, 0, "Simon Says")

	view := m.View()
	assert.True(t, strings.Contains(view, "Simon Says"))
	assert.True(t, strings.Contains(view, "SELECT"))
}
