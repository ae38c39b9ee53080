// Package workspace holds the playground's projects, folders and files in
// memory together with the current selection.
//
// Entities live in an arena keyed by id; containers keep the ordered ids
// of their children. Insertion order decides which child is "first" when
// the selection has to move after a delete.
package workspace

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// Store is not safe for concurrent use. Callers that mutate it from more
// than one goroutine must serialize access.
type Store struct {
	projects map[models.ProjectID]*models.Project
	folders  map[models.FolderID]*models.Folder
	files    map[models.FileID]*models.File
	order    []models.ProjectID
	sel      models.Selection

	newID  func() string
	logger *log.Logger
}

type Option func(*Store)

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDSource replaces the ULID generator. Ids must be unique for the
// lifetime of the store.
func WithIDSource(next func() string) Option {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  func() string { return ulid.Make().String() },
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset drops every project and clears the selection.
func (s *Store) Reset() {
	s.projects = make(map[models.ProjectID]*models.Project)
	s.folders = make(map[models.FolderID]*models.Folder)
	s.files = make(map[models.FileID]*models.File)
	s.order = nil
	s.sel = models.Selection{}
}

func (s *Store) Selection() models.Selection {
	return s.sel
}

// CreateProject adds a project with a "Main" folder holding a seeded
// index.html and selects it.
func (s *Store) CreateProject(name string) (models.ProjectID, error) {
	name, err := validateName("project name", name)
	if err != nil {
		return "", err
	}

	project := &models.Project{ID: models.ProjectID(s.newID()), Name: name}
	s.projects[project.ID] = project
	s.order = append(s.order, project.ID)

	folder := s.addFolder(project, defaultFolderName)
	file := s.addFile(folder, seedFileName, models.FileTypeHTML, projectSeed(name))

	s.sel = models.Selection{Project: project.ID, Folder: folder.ID, File: file.ID}
	s.logger.Debug("project created", "id", project.ID, "name", name)
	return project.ID, nil
}

// CreateFolder adds a folder with a seeded index.html to the current
// project and selects it.
func (s *Store) CreateFolder(name string) (models.FolderID, error) {
	project, ok := s.projects[s.sel.Project]
	if !ok {
		return "", ErrNoSelection
	}
	name, err := validateName("folder name", name)
	if err != nil {
		return "", err
	}

	folder := s.addFolder(project, name)
	file := s.addFile(folder, seedFileName, models.FileTypeHTML, folderSeed(name))

	s.sel.Folder = folder.ID
	s.sel.File = file.ID
	s.logger.Debug("folder created", "id", folder.ID, "name", name, "project", project.ID)
	return folder.ID, nil
}

// CreateFile adds a file to the current folder and selects it. The
// canonical extension for t is appended when name lacks it.
func (s *Store) CreateFile(name string, t models.FileType) (models.FileID, error) {
	if _, ok := s.projects[s.sel.Project]; !ok {
		return "", ErrNoSelection
	}
	folder, ok := s.folders[s.sel.Folder]
	if !ok {
		return "", ErrNoSelection
	}
	name, err := validateName("file name", name)
	if err != nil {
		return "", err
	}
	if !t.Valid() {
		return "", &ValidationError{Field: "file type", Reason: "must be one of html, css or js"}
	}

	name = NormalizeFileName(name, t)
	file := s.addFile(folder, name, t, fileSeed(name, t))

	s.sel.File = file.ID
	s.logger.Debug("file created", "id", file.ID, "name", name, "type", t, "folder", folder.ID)
	return file.ID, nil
}

// NormalizeFileName appends the extension of t unless name already ends
// with it.
func NormalizeFileName(name string, t models.FileType) string {
	if strings.HasSuffix(name, t.Extension()) {
		return name
	}
	return name + t.Extension()
}

func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	return name, nil
}

func (s *Store) addFolder(project *models.Project, name string) *models.Folder {
	folder := &models.Folder{ID: models.FolderID(s.newID()), ProjectID: project.ID, Name: name}
	s.folders[folder.ID] = folder
	project.Folders = append(project.Folders, folder.ID)
	return folder
}

func (s *Store) addFile(folder *models.Folder, name string, t models.FileType, content string) *models.File {
	file := &models.File{ID: models.FileID(s.newID()), FolderID: folder.ID, Name: name, Type: t, Content: content}
	s.files[file.ID] = file
	folder.Files = append(folder.Files, file.ID)
	return file
}

// SaveFileContent overwrites the content of the current file. Without a
// current file it does nothing.
func (s *Store) SaveFileContent(text string) {
	file, ok := s.files[s.sel.File]
	if !ok {
		return
	}
	file.Content = text
	s.logger.Debug("file saved", "id", file.ID, "bytes", len(text))
}

// SelectProject makes id the current project and selects its first folder
// and that folder's first file.
func (s *Store) SelectProject(id models.ProjectID) error {
	if id == s.sel.Project {
		return nil
	}
	project, ok := s.projects[id]
	if !ok {
		return ErrNotFound
	}
	s.enterProject(project)
	return nil
}

// SelectFolder makes id, a folder of the current project, the current
// folder and selects its first file.
func (s *Store) SelectFolder(id models.FolderID) error {
	if id == s.sel.Folder {
		return nil
	}
	folder, ok := s.folders[id]
	if !ok || folder.ProjectID != s.sel.Project {
		return ErrNotFound
	}
	s.enterFolder(folder)
	return nil
}

// SelectFile makes id, a file of the current folder, the current file.
func (s *Store) SelectFile(id models.FileID) error {
	if id == s.sel.File {
		return nil
	}
	file, ok := s.files[id]
	if !ok || file.FolderID != s.sel.Folder {
		return ErrNotFound
	}
	s.sel.File = file.ID
	return nil
}

func (s *Store) enterProject(project *models.Project) {
	s.sel = models.Selection{Project: project.ID}
	if len(project.Folders) > 0 {
		s.enterFolder(s.folders[project.Folders[0]])
	}
}

func (s *Store) enterFolder(folder *models.Folder) {
	s.sel.Folder = folder.ID
	s.sel.File = ""
	if len(folder.Files) > 0 {
		s.sel.File = folder.Files[0]
	}
}

// DeleteProject removes a project with everything it owns. The last
// project cannot be deleted. The first remaining project becomes current.
func (s *Store) DeleteProject(id models.ProjectID) error {
	project, ok := s.projects[id]
	if !ok {
		return ErrNotFound
	}
	if len(s.order) <= 1 {
		return &InvariantViolation{Kind: "project"}
	}

	for _, folderID := range project.Folders {
		s.dropFolder(s.folders[folderID])
	}
	delete(s.projects, id)
	s.order = slices.DeleteFunc(s.order, func(p models.ProjectID) bool { return p == id })
	s.logger.Debug("project deleted", "id", id)

	return s.SelectProject(s.order[0])
}

// DeleteFolder removes a folder of the current project. The last folder
// of a project cannot be deleted. The first remaining folder becomes
// current.
func (s *Store) DeleteFolder(id models.FolderID) error {
	project, ok := s.projects[s.sel.Project]
	if !ok {
		return ErrNotFound
	}
	folder, ok := s.folders[id]
	if !ok || folder.ProjectID != project.ID {
		return ErrNotFound
	}
	if len(project.Folders) <= 1 {
		return &InvariantViolation{Kind: "folder"}
	}

	s.dropFolder(folder)
	project.Folders = slices.DeleteFunc(project.Folders, func(f models.FolderID) bool { return f == id })
	s.logger.Debug("folder deleted", "id", id, "project", project.ID)

	return s.SelectFolder(project.Folders[0])
}

// DeleteFile removes a file of the current folder. The last file of a
// folder cannot be deleted. The first remaining file becomes current.
func (s *Store) DeleteFile(id models.FileID) error {
	folder, ok := s.folders[s.sel.Folder]
	if !ok {
		return ErrNotFound
	}
	file, ok := s.files[id]
	if !ok || file.FolderID != folder.ID {
		return ErrNotFound
	}
	if len(folder.Files) <= 1 {
		return &InvariantViolation{Kind: "file"}
	}

	delete(s.files, id)
	folder.Files = slices.DeleteFunc(folder.Files, func(f models.FileID) bool { return f == id })
	s.logger.Debug("file deleted", "id", id, "folder", folder.ID)

	return s.SelectFile(folder.Files[0])
}

func (s *Store) dropFolder(folder *models.Folder) {
	for _, fileID := range folder.Files {
		delete(s.files, fileID)
	}
	delete(s.folders, folder.ID)
}
