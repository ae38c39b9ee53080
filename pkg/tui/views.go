package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

type tabItem struct {
	id      string
	label   string
	badge   models.FileType
	current bool
}

type treeRow struct {
	depth   int
	label   string
	current bool
}

// snapshot is what the view needs from the store, copied under the
// session lock so rendering never races an auto-save.
type snapshot struct {
	projects []tabItem
	folders  []tabItem
	files    []tabItem
	tree     []treeRow
	file     *models.File
}

func takeSnapshot(s *workspace.Store) snapshot {
	var snap snapshot
	sel := s.Selection()

	for _, p := range s.Projects() {
		snap.projects = append(snap.projects, tabItem{id: string(p.ID), label: p.Name, current: p.ID == sel.Project})
	}
	project, ok := s.CurrentProject()
	if !ok {
		return snap
	}
	snap.tree = append(snap.tree, treeRow{label: project.Name, current: true})
	for _, folder := range s.Folders(project.ID) {
		currentFolder := folder.ID == sel.Folder
		snap.folders = append(snap.folders, tabItem{id: string(folder.ID), label: folder.Name, current: currentFolder})
		snap.tree = append(snap.tree, treeRow{depth: 1, label: folder.Name + "/", current: currentFolder})
		for _, file := range s.Files(folder.ID) {
			currentFile := currentFolder && file.ID == sel.File
			snap.tree = append(snap.tree, treeRow{depth: 2, label: file.Name, current: currentFile})
			if currentFolder {
				snap.files = append(snap.files, tabItem{id: string(file.ID), label: file.Name, badge: file.Type, current: currentFile})
			}
		}
	}
	if f, ok := s.CurrentFile(); ok {
		snap.file = &f
	}
	return snap
}

func (s snapshot) items(l level) []tabItem {
	switch l {
	case levelProjects:
		return s.projects
	case levelFolders:
		return s.folders
	case levelFiles:
		return s.files
	}
	return nil
}

func (s snapshot) current(l level) (tabItem, int, bool) {
	for i, item := range s.items(l) {
		if item.current {
			return item, i, true
		}
	}
	return tabItem{}, -1, false
}

// renderTabs draws one level as a single line of tabs. Tabs past the width
// are cut with an ellipsis.
func renderTabs(title string, items []tabItem, focused bool, width int) string {
	header := GetActiveHeaderStyle(focused).Render(strings.ToUpper(title))
	parts := []string{lipgloss.NewStyle().Width(10).Render(header)}
	for _, item := range items {
		label := " " + item.label + " "
		switch {
		case item.current && focused:
			label = SelectedStyle.Render(label)
		case item.current:
			label = CurrentStyle.Render(label)
		default:
			label = NormalStyle.Render(label)
		}
		if item.badge != "" {
			label += fileTypeBadge(item.badge)
		}
		parts = append(parts, label)
	}
	line := strings.Join(parts, " ")
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}

func renderTree(rows []treeRow, width, height int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("TREE"))
	b.WriteString("\n\n")
	for _, row := range rows {
		prefix := strings.Repeat("  ", row.depth)
		if row.depth > 0 {
			prefix = strings.Repeat("  ", row.depth-1) + "└ "
		}
		label := truncate.StringWithTail(row.label, uint(max(width-lipgloss.Width(prefix)-2, 1)), "…")
		if row.current {
			label = CurrentStyle.Render(label)
		} else {
			label = NormalStyle.Render(label)
		}
		b.WriteString(DescriptionStyle.Render(prefix) + label + "\n")
	}
	return InactiveBorderStyle.Width(width).Height(height).Render(b.String())
}

func renderHelp(l level, width int) string {
	var keys []string
	if l == levelEditor {
		keys = []string{"esc back", "ctrl+s save", "ctrl+r run", "tab focus", "ctrl+c quit"}
	} else {
		keys = []string{"←/→ switch", "enter open", "n new", "d delete", "ctrl+r run", "tab focus", "ctrl+c quit"}
	}
	help := strings.Join(keys, " • ")
	return DescriptionStyle.Width(width).Render(truncate.StringWithTail(help, uint(max(width, 1)), "…"))
}
