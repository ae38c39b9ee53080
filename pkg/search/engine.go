package search

import (
	"strings"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// Source is the read side of the workspace store.
type Source interface {
	Projects() []models.Project
	Folders(id models.ProjectID) []models.Folder
	Files(id models.FolderID) []models.File
}

// Match is a file that satisfied the query. Line and Snippet point at the
// first line matching a content condition, when there is one.
type Match struct {
	Project models.Project
	Folder  models.Folder
	File    models.File
	Line    int
	Snippet string
}

// Path is project/folder/file.
func (m Match) Path() string {
	return m.Project.Name + "/" + m.Folder.Name + "/" + m.File.Name
}

// Search walks every file in store order. Conditions combine left to
// right with no precedence between AND and OR.
func Search(src Source, q *Query) []Match {
	var matches []Match
	for _, project := range src.Projects() {
		for _, folder := range src.Folders(project.ID) {
			for _, file := range src.Files(folder.ID) {
				m := Match{Project: project, Folder: folder, File: file}
				if !q.matches(m) {
					continue
				}
				m.Line, m.Snippet = q.locate(file.Content)
				matches = append(matches, m)
			}
		}
	}
	return matches
}

func (q *Query) matches(m Match) bool {
	if len(q.Conditions) == 0 {
		return true
	}
	result := q.Conditions[0].eval(m)
	for i, op := range q.Logic {
		next := q.Conditions[i+1].eval(m)
		if op == OperatorOR {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

func (c Condition) eval(m Match) bool {
	var ok bool
	switch c.Field {
	case FieldFileType:
		ok = string(m.File.Type) == c.Value
	case FieldName:
		ok = containsFold(m.File.Name, c.Value)
	case FieldFolder:
		ok = containsFold(m.Folder.Name, c.Value)
	case FieldProject:
		ok = containsFold(m.Project.Name, c.Value)
	case FieldContent:
		ok = containsFold(m.File.Content, c.Value)
	}
	return ok != c.Negate
}

func (q *Query) locate(content string) (int, string) {
	for _, c := range q.Conditions {
		if c.Field != FieldContent || c.Negate {
			continue
		}
		for i, line := range strings.Split(content, "\n") {
			if containsFold(line, c.Value) {
				return i + 1, strings.TrimSpace(line)
			}
		}
	}
	return 0, ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
