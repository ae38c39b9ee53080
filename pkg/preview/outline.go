package preview

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Outline summarizes a document for text-only display.
type Outline struct {
	Title    string
	Headings []string
	Styles   int
	Scripts  int
	Buttons  []string
	Text     string // visible body text, whitespace collapsed
}

// OutlineOf parses doc leniently; any string yields an outline.
func OutlineOf(doc string) (Outline, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Outline{}, fmt.Errorf("failed to parse document: %w", err)
	}

	o := Outline{
		Title:   strings.TrimSpace(dom.Find("title").First().Text()),
		Styles:  dom.Find("style").Length(),
		Scripts: dom.Find("script").Length(),
	}
	dom.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			o.Headings = append(o.Headings, text)
		}
	})
	dom.Find("button").Each(func(_ int, s *goquery.Selection) {
		o.Buttons = append(o.Buttons, collapse(s.Text()))
	})

	body := dom.Find("body").Clone()
	body.Find("script, style").Remove()
	o.Text = collapse(body.Text())
	return o, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
