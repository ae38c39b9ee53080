package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// createModal prompts for the name of a new project, folder or file. For
// files tab cycles the file type.
type createModal struct {
	active   bool
	level    level
	input    textinput.Model
	fileType models.FileType
	err      string
}

// createSubmitMsg is emitted when the user confirms the modal.
type createSubmitMsg struct {
	level    level
	name     string
	fileType models.FileType
}

func newCreateModal() *createModal {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32
	return &createModal{input: ti, fileType: models.FileTypeHTML}
}

func (m *createModal) Open(l level) tea.Cmd {
	m.active = true
	m.level = l
	m.err = ""
	m.fileType = models.FileTypeHTML
	m.input.SetValue("")
	m.input.Placeholder = fmt.Sprintf("%s name", l.noun())
	return m.input.Focus()
}

func (m *createModal) Close() {
	m.active = false
	m.err = ""
	m.input.Blur()
}

func (m *createModal) Active() bool {
	return m.active
}

// Fail keeps the modal open and shows why the name was rejected.
func (m *createModal) Fail(err error) {
	m.err = err.Error()
}

func (m *createModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Close()
		return nil
	case "enter":
		submit := createSubmitMsg{level: m.level, name: m.input.Value(), fileType: m.fileType}
		return func() tea.Msg { return submit }
	case "tab", "shift+tab":
		if m.level == levelFiles {
			m.fileType = cycleFileType(m.fileType, msg.String() == "tab")
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = ""
	return cmd
}

func cycleFileType(t models.FileType, forward bool) models.FileType {
	types := models.FileTypes
	for i, candidate := range types {
		if candidate != t {
			continue
		}
		if forward {
			return types[(i+1)%len(types)]
		}
		return types[(i+len(types)-1)%len(types)]
	}
	return types[0]
}

func (m *createModal) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("New " + m.level.noun()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.level == levelFiles {
		b.WriteString("\n\n")
		var chips []string
		for _, t := range models.FileTypes {
			chip := NormalStyle.Render(string(t))
			if t == m.fileType {
				chip = SelectedStyle.Render(" " + string(t) + " ")
			}
			chips = append(chips, chip)
		}
		b.WriteString("type: " + strings.Join(chips, " "))
	}
	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(m.err))
	}
	b.WriteString("\n\n")
	hint := "enter create • esc cancel"
	if m.level == levelFiles {
		hint += " • tab type"
	}
	b.WriteString(DescriptionStyle.Render(hint))

	return InputStyle.Width(44).Render(b.String())
}

func placeModal(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
