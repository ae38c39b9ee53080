package workspace

import (
	"slices"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// Lookups hand out copies; mutating a returned value never touches the store.

func (s *Store) Project(id models.ProjectID) (models.Project, bool) {
	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, false
	}
	cp := *p
	cp.Folders = slices.Clone(p.Folders)
	return cp, true
}

func (s *Store) Folder(id models.FolderID) (models.Folder, bool) {
	f, ok := s.folders[id]
	if !ok {
		return models.Folder{}, false
	}
	cp := *f
	cp.Files = slices.Clone(f.Files)
	return cp, true
}

func (s *Store) File(id models.FileID) (models.File, bool) {
	f, ok := s.files[id]
	if !ok {
		return models.File{}, false
	}
	return *f, true
}

func (s *Store) CurrentProject() (models.Project, bool) {
	return s.Project(s.sel.Project)
}

// CurrentFolder resolves the selection to a folder of the current project.
func (s *Store) CurrentFolder() (models.Folder, bool) {
	f, ok := s.Folder(s.sel.Folder)
	if !ok || f.ProjectID != s.sel.Project {
		return models.Folder{}, false
	}
	return f, true
}

// CurrentFile resolves the selection to a file of the current folder.
func (s *Store) CurrentFile() (models.File, bool) {
	if _, ok := s.CurrentFolder(); !ok {
		return models.File{}, false
	}
	f, ok := s.File(s.sel.File)
	if !ok || f.FolderID != s.sel.Folder {
		return models.File{}, false
	}
	return f, true
}

// Projects enumerates all projects in creation order.
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, 0, len(s.order))
	for _, id := range s.order {
		p, _ := s.Project(id)
		out = append(out, p)
	}
	return out
}

// Folders enumerates the folders of a project in creation order.
func (s *Store) Folders(id models.ProjectID) []models.Folder {
	p, ok := s.projects[id]
	if !ok {
		return nil
	}
	out := make([]models.Folder, 0, len(p.Folders))
	for _, fid := range p.Folders {
		f, _ := s.Folder(fid)
		out = append(out, f)
	}
	return out
}

// Files enumerates the files of a folder in creation order.
func (s *Store) Files(id models.FolderID) []models.File {
	f, ok := s.folders[id]
	if !ok {
		return nil
	}
	out := make([]models.File, 0, len(f.Files))
	for _, fid := range f.Files {
		out = append(out, *s.files[fid])
	}
	return out
}

// ProjectFiles returns every file of a project, folder by folder, each
// folder's files in order. This is the order composition scans in.
func (s *Store) ProjectFiles(id models.ProjectID) ([]models.File, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	var out []models.File
	for _, fid := range p.Folders {
		out = append(out, s.Files(fid)...)
	}
	return out, nil
}
