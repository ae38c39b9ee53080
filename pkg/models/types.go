package models

import (
	"fmt"
	"strings"
)

type ProjectID string
type FolderID string
type FileID string

// FileType tags a file with the slot it fills when a project is composed.
type FileType string

const (
	FileTypeHTML FileType = "html"
	FileTypeCSS  FileType = "css"
	FileTypeJS   FileType = "js"
)

// FileTypes lists the recognized file types in display order.
var FileTypes = []FileType{FileTypeHTML, FileTypeCSS, FileTypeJS}

// Extension returns the canonical file extension, including the dot.
func (t FileType) Extension() string {
	return "." + string(t)
}

func (t FileType) Valid() bool {
	switch t {
	case FileTypeHTML, FileTypeCSS, FileTypeJS:
		return true
	}
	return false
}

// ParseFileType accepts a type name or an extension (".css", "CSS").
func ParseFileType(s string) (FileType, error) {
	t := FileType(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if !t.Valid() {
		return "", fmt.Errorf("invalid file type: %s (must be: html, css, or js)", s)
	}
	return t, nil
}

type Project struct {
	ID      ProjectID  `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	Folders []FolderID `json:"folders" yaml:"folders"`
}

type Folder struct {
	ID        FolderID  `json:"id" yaml:"id"`
	ProjectID ProjectID `json:"project_id" yaml:"project_id"`
	Name      string    `json:"name" yaml:"name"`
	Files     []FileID  `json:"files" yaml:"files"`
}

type File struct {
	ID       FileID   `json:"id" yaml:"id"`
	FolderID FolderID `json:"folder_id" yaml:"folder_id"`
	Name     string   `json:"name" yaml:"name"`
	Type     FileType `json:"type" yaml:"type"`
	Content  string   `json:"content" yaml:"content"`
}

// Selection is the project/folder/file the editor is looking at.
// Empty ids mean nothing is selected at that level.
type Selection struct {
	Project ProjectID
	Folder  FolderID
	File    FileID
}

func (s Selection) Empty() bool {
	return s.Project == "" && s.Folder == "" && s.File == ""
}
