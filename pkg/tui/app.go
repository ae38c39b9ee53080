package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/preview"
	"github.com/codecraft/codecraft-terminal/pkg/session"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// level is the part of the screen that has focus. The first three map to
// the store hierarchy.
type level int

const (
	levelProjects level = iota
	levelFolders
	levelFiles
	levelEditor
	levelCount
)

func (l level) noun() string {
	switch l {
	case levelProjects:
		return "project"
	case levelFolders:
		return "folder"
	default:
		return "file"
	}
}

const (
	statusTimeout = 3 * time.Second
	treeWidth     = 26
)

// Messages
type StatusMsg string

type clearStatusMsg struct{ seq int }

type autoSavedMsg session.Event

// initialRunMsg carries the preview rendered when the app starts.
type initialRunMsg struct {
	doc string
	err error
}

type App struct {
	sess     *session.Session
	surface  *preview.Memory
	settings *models.Settings
	logger   *log.Logger
	events   chan session.Event

	focus   level
	editor  textarea.Model
	preview previewPane
	modal   *createModal
	confirm *ConfirmationModel

	width     int
	height    int
	statusMsg string
	statusErr bool
	statusSeq int
}

type Option func(*App)

func WithSettings(s *models.Settings) Option {
	return func(a *App) {
		if s != nil {
			a.settings = s
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewApp opens an editing session over store. The app owns the session
// until Close.
func NewApp(store *workspace.Store, opts ...Option) *App {
	a := &App{
		surface:  preview.NewMemory(),
		settings: models.DefaultSettings(),
		logger:   log.New(io.Discard),
		events:   make(chan session.Event, 8),
		focus:    levelFiles,
		preview:  newPreviewPane(),
		modal:    newCreateModal(),
		confirm:  NewConfirmation(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.sess = session.New(store, a.surface,
		session.WithSettings(a.settings),
		session.WithLogger(a.logger),
		session.OnAutoSave(a.forward),
	)

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "No file selected"
	a.editor = ta
	a.loadEditor()
	return a
}

// forward runs on the session's timer goroutine.
func (a *App) forward(ev session.Event) {
	select {
	case a.events <- ev:
	default:
		a.logger.Debug("auto-save event dropped", "file", ev.File)
	}
}

func waitForAutoSave(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return autoSavedMsg(ev)
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(waitForAutoSave(a.events), a.initialRun)
}

func (a *App) initialRun() tea.Msg {
	doc, err := a.sess.Run()
	return initialRunMsg{doc: doc, err: err}
}

// Close saves pending edits.
func (a *App) Close() {
	a.sess.Close()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil

	case createSubmitMsg:
		return a, a.create(msg)

	case initialRunMsg:
		if msg.err != nil {
			return a, a.fail(msg.err)
		}
		a.preview.SetDocument(msg.doc)
		return a, nil

	case autoSavedMsg:
		ev := session.Event(msg)
		cmds := []tea.Cmd{waitForAutoSave(a.events)}
		switch {
		case ev.Err != nil:
			cmds = append(cmds, a.fail(ev.Err))
		case ev.Document != "":
			a.preview.SetDocument(ev.Document)
		}
		return a, tea.Batch(cmds...)
	}

	if a.focus == levelEditor {
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		a.sess.Close()
		return tea.Quit
	}
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}
	if a.modal.Active() {
		return a.modal.Update(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		a.sess.Save()
		return a.setStatus("Saved", false)
	case "ctrl+r":
		return a.run()
	case "tab":
		a.setFocus((a.focus + 1) % levelCount)
		return nil
	case "shift+tab":
		a.setFocus((a.focus + levelCount - 1) % levelCount)
		return nil
	}

	if a.focus == levelEditor {
		if msg.String() == "esc" {
			a.setFocus(levelFiles)
			return nil
		}
		before := a.editor.Value()
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		if after := a.editor.Value(); after != before {
			a.sess.Edit(after)
		}
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		return a.cycle(-1)
	case "right", "l":
		return a.cycle(1)
	case "enter", "down", "j":
		a.setFocus(a.focus + 1)
	case "up", "k":
		if a.focus > levelProjects {
			a.setFocus(a.focus - 1)
		}
	case "n":
		return a.modal.Open(a.focus)
	case "d":
		return a.confirmDelete()
	}
	return nil
}

func (a *App) setFocus(l level) {
	a.focus = l
	if l == levelEditor {
		a.editor.Focus()
	} else {
		a.editor.Blur()
	}
}

func (a *App) snapshot() snapshot {
	var snap snapshot
	a.sess.View(func(s *workspace.Store) {
		snap = takeSnapshot(s)
	})
	return snap
}

func (a *App) loadEditor() {
	a.editor.SetValue(a.sess.Buffer())
}

// do runs a store operation and reloads the editor from the new selection.
func (a *App) do(op func(*workspace.Store) error) tea.Cmd {
	err := a.sess.Do(op)
	a.loadEditor()
	if err != nil {
		return a.fail(err)
	}
	return nil
}

func (a *App) cycle(delta int) tea.Cmd {
	snap := a.snapshot()
	items := snap.items(a.focus)
	if len(items) < 2 {
		return nil
	}
	_, i, ok := snap.current(a.focus)
	if !ok {
		i = 0
	}
	next := items[(i+delta+len(items))%len(items)]
	l := a.focus
	return a.do(func(s *workspace.Store) error {
		return selectAt(s, l, next.id)
	})
}

func selectAt(s *workspace.Store, l level, id string) error {
	switch l {
	case levelProjects:
		return s.SelectProject(models.ProjectID(id))
	case levelFolders:
		return s.SelectFolder(models.FolderID(id))
	default:
		return s.SelectFile(models.FileID(id))
	}
}

func deleteAt(s *workspace.Store, l level, id string) error {
	switch l {
	case levelProjects:
		return s.DeleteProject(models.ProjectID(id))
	case levelFolders:
		return s.DeleteFolder(models.FolderID(id))
	default:
		return s.DeleteFile(models.FileID(id))
	}
}

func (a *App) create(msg createSubmitMsg) tea.Cmd {
	err := a.sess.Do(func(s *workspace.Store) error {
		var err error
		switch msg.level {
		case levelProjects:
			_, err = s.CreateProject(msg.name)
		case levelFolders:
			_, err = s.CreateFolder(msg.name)
		default:
			_, err = s.CreateFile(msg.name, msg.fileType)
		}
		return err
	})
	a.loadEditor()

	if workspace.IsValidation(err) {
		a.modal.Fail(err)
		return nil
	}
	a.modal.Close()
	if err != nil {
		return a.fail(err)
	}

	name := strings.TrimSpace(msg.name)
	if msg.level == levelFiles {
		name = workspace.NormalizeFileName(name, msg.fileType)
	}
	return a.setStatus(fmt.Sprintf("Created %s %q", msg.level.noun(), name), false)
}

// confirmDelete asks before deleting the current item of the focused
// level. Deleting the last item goes straight to the store so the refusal
// shows without a prompt.
func (a *App) confirmDelete() tea.Cmd {
	if a.focus == levelEditor {
		return nil
	}
	snap := a.snapshot()
	item, _, ok := snap.current(a.focus)
	if !ok {
		return nil
	}
	l := a.focus
	remove := func(s *workspace.Store) error { return deleteAt(s, l, item.id) }
	if len(snap.items(l)) == 1 {
		return a.do(remove)
	}

	onConfirm := func() tea.Cmd {
		if cmd := a.do(remove); cmd != nil {
			return cmd
		}
		return a.setStatus(fmt.Sprintf("Deleted %s %q", l.noun(), item.label), false)
	}

	if l == levelProjects {
		a.confirm.Show(ConfirmationConfig{
			Title:       "Delete project",
			Message:     fmt.Sprintf("Delete project %q?", item.label),
			Warning:     "All of its folders and files are deleted with it.",
			Destructive: true,
			Type:        ConfirmTypeDialog,
			Width:       52,
		}, onConfirm, nil)
		return nil
	}
	a.confirm.ShowInline(fmt.Sprintf("Delete %s %q?", l.noun(), item.label), true, onConfirm, nil)
	return nil
}

func (a *App) run() tea.Cmd {
	doc, err := a.sess.Run()
	if err != nil {
		return a.fail(err)
	}
	a.preview.SetDocument(doc)
	return a.setStatus("Preview updated", false)
}

func (a *App) fail(err error) tea.Cmd {
	a.logger.Warn("operation failed", "err", err)
	return a.setStatus(err.Error(), true)
}

func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.statusSeq++
	a.statusMsg = text
	a.statusErr = isErr
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

type layout struct {
	body    int
	tree    int
	editor  int
	preview int
}

func (a *App) layout() layout {
	l := layout{body: max(a.height-10, 5)}
	rest := a.width
	if a.settings.UI.ShowTree {
		l.tree = treeWidth
		rest -= treeWidth
	}
	l.editor = rest
	if a.settings.UI.ShowPreview {
		l.editor = rest / 2
		l.preview = rest - l.editor
	}
	return l
}

func (a *App) resize() {
	l := a.layout()
	a.editor.SetWidth(max(l.editor-4, 10))
	a.editor.SetHeight(max(l.body-2, 3))
	if l.preview > 0 {
		a.preview.SetSize(max(l.preview-4, 10), max(l.body-2, 3))
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	if a.modal.Active() {
		return placeModal(a.width, a.height, a.modal.View())
	}
	if a.confirm.Active() && a.confirm.config.Type == ConfirmTypeDialog {
		return placeModal(a.width, a.height, a.confirm.View(0))
	}

	snap := a.snapshot()
	l := a.layout()

	title := ""
	if snap.file != nil {
		title = snap.file.Name
		if a.sess.Dirty() {
			title += " ●"
		}
	}

	sections := []string{
		renderHeader(a.width, title),
		"",
		renderTabs("projects", snap.projects, a.focus == levelProjects, a.width),
		renderTabs("folders", snap.folders, a.focus == levelFolders, a.width),
		renderTabs("files", snap.files, a.focus == levelFiles, a.width),
		"",
	}

	var panes []string
	if l.tree > 0 {
		panes = append(panes, renderTree(snap.tree, l.tree-2, l.body))
	}
	editorTitle := GetActiveHeaderStyle(a.focus == levelEditor).Render("EDITOR")
	panes = append(panes, borderStyle(a.focus == levelEditor).
		Width(l.editor-2).
		Height(l.body).
		Render(editorTitle+"\n"+a.editor.View()))
	if l.preview > 0 {
		panes = append(panes, InactiveBorderStyle.
			Width(l.preview-2).
			Height(l.body).
			Render(HeaderStyle.Render("PREVIEW")+"\n"+a.preview.viewport.View()))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, panes...))

	if a.confirm.Active() {
		sections = append(sections, a.confirm.View(a.width))
	}
	if a.statusMsg != "" {
		style := StatusStyle
		if a.statusErr {
			style = StatusErrorStyle
		}
		sections = append(sections, style.Render(a.statusMsg))
	}
	sections = append(sections, renderHelp(a.focus, a.width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
