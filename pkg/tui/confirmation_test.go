package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmationAnswers(t *testing.T) {
	tests := []struct {
		key       string
		confirmed bool
		cancelled bool
	}{
		{key: "y", confirmed: true},
		{key: "Y", confirmed: true},
		{key: "n", cancelled: true},
		{key: "esc", cancelled: true},
		{key: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var confirmed, cancelled bool
			m := NewConfirmation()
			m.ShowInline("Delete?", true,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)

			m.Update(key(tt.key))

			assert.Equal(t, tt.confirmed, confirmed)
			assert.Equal(t, tt.cancelled, cancelled)
			assert.Equal(t, !tt.confirmed && !tt.cancelled, m.Active())
		})
	}
}

func TestConfirmationInactiveIgnoresKeys(t *testing.T) {
	called := false
	m := NewConfirmation()
	m.ShowInline("Delete?", true, func() tea.Cmd { called = true; return nil }, nil)
	m.Hide()

	assert.Nil(t, m.Update(key("y")))
	assert.False(t, called)
	assert.Empty(t, m.View(80))
}

func TestConfirmationViews(t *testing.T) {
	m := NewConfirmation()

	m.ShowInline(`Delete file "a.css"?`, true, nil, nil)
	assert.Contains(t, m.View(0), `Delete file "a.css"?`)
	assert.Contains(t, m.View(0), "[y]")

	m.Show(ConfirmationConfig{
		Title:   "Delete project",
		Message: "Delete project Blog?",
		Warning: "Folders go too.",
		Type:    ConfirmTypeDialog,
	}, nil, nil)
	view := m.View(0)
	assert.Contains(t, view, "Delete project")
	assert.Contains(t, view, "Folders go too.")
	assert.Contains(t, view, "(yes / no)")
}
