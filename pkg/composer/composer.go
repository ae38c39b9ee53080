// Package composer merges a project's HTML, CSS and JS files into the
// single document the preview renders.
package composer

import (
	"fmt"
	"strings"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

const (
	headClose = "</head>"
	bodyClose = "</body>"
)

// Payload holds the content chosen for each slot of the document.
type Payload struct {
	HTML string
	CSS  string
	JS   string
}

// Slots picks one payload per file type. Files are scanned in order and a
// later file of a type replaces an earlier one, so with two stylesheets
// only the last is used. Missing types stay empty.
func Slots(files []models.File) Payload {
	var p Payload
	for _, f := range files {
		switch f.Type {
		case models.FileTypeHTML:
			p.HTML = f.Content
		case models.FileTypeCSS:
			p.CSS = f.Content
		case models.FileTypeJS:
			p.JS = f.Content
		}
	}
	return p
}

// Compose splices the CSS payload into a <style> tag before the first
// "</head>" and the JS payload into a <script> tag before the first
// "</body>" of the HTML payload. This is plain substring matching: an
// anchor that does not occur skips its injection, and anchors hidden in
// script strings are matched all the same.
func Compose(files []models.File) string {
	return Splice(Slots(files))
}

// Splice builds the document from already selected payloads.
func Splice(p Payload) string {
	doc := strings.Replace(p.HTML, headClose, "<style>"+p.CSS+"</style>"+headClose, 1)
	return strings.Replace(doc, bodyClose, "<script>"+p.JS+"</script>"+bodyClose, 1)
}

// ProjectSource is the part of the workspace store composition reads.
type ProjectSource interface {
	ProjectFiles(id models.ProjectID) ([]models.File, error)
}

// ComposeProject composes the files of project id.
func ComposeProject(src ProjectSource, id models.ProjectID) (string, error) {
	files, err := src.ProjectFiles(id)
	if err != nil {
		return "", fmt.Errorf("cannot compose project %s: %w", id, err)
	}
	return Compose(files), nil
}
