package composer

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

const mediaTypeHTML = "text/html"

var (
	minifier = newMinifier()
	// minifyDoc is swapped in tests to force a failure.
	minifyDoc = Minify
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc(mediaTypeHTML, html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return m
}

// ComposeWithSettings composes files and applies the preview settings.
// When minification fails the unminified document is returned and the
// failure goes to logger. A nil logger discards it.
func ComposeWithSettings(files []models.File, settings *models.Settings, logger *log.Logger) string {
	doc := Compose(files)
	if settings == nil || !settings.Preview.Minify {
		return doc
	}
	out, err := minifyDoc(doc)
	if err != nil {
		if logger == nil {
			logger = log.New(io.Discard)
		}
		logger.Warn("minify failed, using original document", "err", err)
		return doc
	}
	return out
}

// ComposeProjectWithSettings composes project id with the preview settings.
func ComposeProjectWithSettings(src ProjectSource, id models.ProjectID, settings *models.Settings, logger *log.Logger) (string, error) {
	files, err := src.ProjectFiles(id)
	if err != nil {
		return "", fmt.Errorf("cannot compose project %s: %w", id, err)
	}
	return ComposeWithSettings(files, settings, logger), nil
}

// Minify minifies a composed document, including embedded style and script.
func Minify(doc string) (string, error) {
	out, err := minifier.String(mediaTypeHTML, doc)
	if err != nil {
		return "", fmt.Errorf("failed to minify document: %w", err)
	}
	return out, nil
}
