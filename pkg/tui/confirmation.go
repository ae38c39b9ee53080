package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // one line above the status bar
	ConfirmTypeDialog                         // bordered box
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string // shown in orange below the message
	Destructive bool   // yes is red, no is green
	Type        ConfirmationType
	Width       int // dialog only
}

// ConfirmationModel asks a yes/no question and runs a callback for the answer.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// ShowInline is the short form used for delete prompts.
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events while the prompt is shown. Other keys are
// swallowed so nothing underneath reacts.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the prompt centered in width; width 0 leaves it unpadded.
func (m *ConfirmationModel) View(width int) string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline(width)
}

func (m *ConfirmationModel) renderInline(width int) string {
	message := fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
	if m.config.Warning != "" {
		message += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.config.Warning)
	}
	if width > 0 && lipgloss.Width(message) < width {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(message)
	}
	return message
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 50
	}
	inner := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(inner.Render(HeaderStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(inner.Render(m.config.Message))
	b.WriteString("\n")
	if m.config.Warning != "" {
		warning := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.config.Warning)
		b.WriteString("\n")
		b.WriteString(inner.Render(warning))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(inner.Render(formatConfirmOptions(m.config.Destructive) + "  (yes / no)"))

	return ActiveBorderStyle.Width(width).Padding(1, 1).Render(b.String())
}
