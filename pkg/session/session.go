// Package session ties an editor buffer to the workspace store: edits are
// saved after a quiet period and a run composes the current project and
// hands the document to a preview surface.
package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/codecraft/codecraft-terminal/pkg/composer"
	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/preview"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// Session owns the store while it is in use. The store is only touched
// with mu held because auto-saves fire on a timer goroutine.
type Session struct {
	mu       sync.Mutex
	store    *workspace.Store
	surface  preview.Surface
	settings *models.Settings
	logger   *log.Logger
	timer    *saveTimer

	buffer string
	dirty  bool
	closed bool

	onAutoSave func(Event)
}

// Event reports what an auto-save did. Document is set when the settings
// ask for a run after each save.
type Event struct {
	File     models.FileID
	Document string
	Err      error
}

type Option func(*Session)

func WithSettings(s *models.Settings) Option {
	return func(sess *Session) {
		if s != nil {
			sess.settings = s
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(sess *Session) {
		if l != nil {
			sess.logger = l
		}
	}
}

// OnAutoSave registers a callback run on the timer goroutine after every
// auto-save. It must not call back into the session.
func OnAutoSave(f func(Event)) Option {
	return func(sess *Session) {
		sess.onAutoSave = f
	}
}

// New starts a session over store, loading the current file into the buffer.
func New(store *workspace.Store, surface preview.Surface, opts ...Option) *Session {
	s := &Session{
		store:    store,
		surface:  surface,
		settings: models.DefaultSettings(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	delay := s.settings.Editor.AutoSaveDelay
	if delay <= 0 {
		delay = models.DefaultAutoSaveDelay
	}
	s.timer = newSaveTimer(delay)
	s.loadLocked()
	return s
}

// Edit replaces the buffer and schedules a save. Each call restarts the
// wait, so a burst of edits results in one save.
func (s *Session) Edit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.buffer = text
	s.dirty = true
	s.timer.Schedule(s.autoSave)
}

// Buffer returns the text being edited.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// Dirty reports whether the buffer has edits not yet saved to the store.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save cancels the pending auto-save and saves the buffer now.
func (s *Session) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Cancel()
	s.saveLocked()
}

// Run saves the buffer, composes the current project and renders it. With
// no current project nothing is rendered and the document is empty.
func (s *Session) Run() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Cancel()
	s.saveLocked()
	return s.runLocked()
}

// Do runs a store operation. Pending edits are saved first so they land in
// the file they were made in, and the buffer follows the selection after.
func (s *Session) Do(op func(*workspace.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Cancel()
	s.saveLocked()

	err := op(s.store)
	s.loadLocked()
	return err
}

// View runs fn with read access to the store.
func (s *Session) View(fn func(*workspace.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// Close saves pending edits. Later edits are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Cancel()
	s.saveLocked()
	s.closed = true
}

func (s *Session) autoSave() {
	s.mu.Lock()
	if s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	ev := Event{File: s.store.Selection().File}
	s.saveLocked()
	if s.settings.Preview.AutoRun {
		ev.Document, ev.Err = s.runLocked()
	}
	cb := s.onAutoSave
	s.mu.Unlock()

	if cb != nil {
		cb(ev)
	}
}

func (s *Session) saveLocked() {
	if !s.dirty {
		return
	}
	s.store.SaveFileContent(s.buffer)
	s.dirty = false
	s.logger.Debug("buffer saved", "file", s.store.Selection().File, "bytes", len(s.buffer))
}

func (s *Session) loadLocked() {
	s.buffer = ""
	s.dirty = false
	if f, ok := s.store.CurrentFile(); ok {
		s.buffer = f.Content
	}
}

func (s *Session) runLocked() (string, error) {
	project, ok := s.store.CurrentProject()
	if !ok {
		return "", nil
	}
	doc, err := composer.ComposeProjectWithSettings(s.store, project.ID, s.settings, s.logger)
	if err != nil {
		return "", err
	}
	if s.surface != nil {
		if err := s.surface.Render(doc); err != nil {
			return doc, fmt.Errorf("failed to render preview: %w", err)
		}
	}
	s.logger.Debug("preview rendered", "project", project.ID, "bytes", len(doc))
	return doc, nil
}
