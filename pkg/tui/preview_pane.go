package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/codecraft/codecraft-terminal/pkg/preview"
)

// previewPane shows the last composed document: an outline of what a
// browser would display, followed by the document source.
type previewPane struct {
	viewport viewport.Model
	doc      string
}

func newPreviewPane() previewPane {
	return previewPane{viewport: viewport.New(40, 20)}
}

func (p *previewPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

func (p *previewPane) SetDocument(doc string) {
	p.doc = doc
	p.refresh()
	p.viewport.GotoTop()
}

func (p *previewPane) Document() string {
	return p.doc
}

func (p *previewPane) refresh() {
	p.viewport.SetContent(wordwrap.String(renderPreview(p.doc), p.viewport.Width))
}

func renderPreview(doc string) string {
	if doc == "" {
		return DescriptionStyle.Render("Press ctrl+r to run the project.")
	}

	var b strings.Builder
	outline, err := preview.OutlineOf(doc)
	if err != nil {
		b.WriteString(ErrorStyle.Render(err.Error()))
		b.WriteString("\n\n")
	} else {
		if outline.Title != "" {
			b.WriteString(HeaderStyle.Render(outline.Title))
			b.WriteString("\n")
		}
		for _, h := range outline.Headings {
			b.WriteString("# " + h + "\n")
		}
		for _, label := range outline.Buttons {
			b.WriteString("[ " + label + " ]\n")
		}
		if outline.Text != "" {
			b.WriteString("\n" + outline.Text + "\n")
		}
		b.WriteString(DescriptionStyle.Render(fmt.Sprintf("\n%d style, %d script\n", outline.Styles, outline.Scripts)))
	}

	b.WriteString(DescriptionStyle.Render(strings.Repeat("─", 12)))
	b.WriteString("\n")
	b.WriteString(doc)
	return b.String()
}
