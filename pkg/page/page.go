package page

import (
	"path"
	"strings"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Format identifies a page file format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// FormatOf returns the format for a file name based on its extension.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".html", ".htm":
		return FormatHTML, true
	default:
		return "", false
	}
}

// Page is a parsed artifact file. It implements vdom.Component.
type Page struct {
	// Name is the file name the page was parsed from.
	Name string

	// Format is the source format.
	Format Format

	// Meta is the merged front matter and document metadata; nil when the
	// page carries none.
	Meta *Meta

	// Body is the rendered page content.
	Body *vdom.VNode
}

// Render implements vdom.Component.
func (p *Page) Render() *vdom.VNode {
	return vdom.Article(
		vdom.Class("page", "page-"+string(p.Format)),
		p.Body,
	)
}

// Parse reads a page file. The format is chosen by the extension of name.
func Parse(name string, data []byte) (*Page, error) {
	format, ok := FormatOf(name)
	if !ok {
		return nil, errors.New("E203").
			WithDetailf("%s has extension %q", name, path.Ext(name)).
			WithSuggestion("Use .md or .html page files")
	}

	fm, body, _, err := SplitFrontMatter(data)
	if err != nil {
		return nil, errors.New("E204").WithDetail(name).Wrap(err)
	}
	meta, err := ParseFrontMatter(fm)
	if err != nil {
		return nil, errors.New("E204").WithDetail(name).Wrap(err)
	}

	var doc document
	switch format {
	case FormatMarkdown:
		doc, err = parseMarkdown(body)
	case FormatHTML:
		doc, err = parseHTML(body)
	}
	if err != nil {
		return nil, errors.New("E204").WithDetail(name).Wrap(err)
	}

	return &Page{
		Name:   name,
		Format: format,
		Meta:   mergeMeta(meta, doc),
		Body:   doc.body,
	}, nil
}

// document is what a format parser extracts from a page body.
type document struct {
	body        *vdom.VNode
	title       string
	description string
}

// mergeMeta fills missing front matter fields from the document.
func mergeMeta(meta *Meta, doc document) *Meta {
	if meta == nil {
		if doc.title == "" && doc.description == "" {
			return nil
		}
		meta = &Meta{}
	}
	if meta.Title == "" {
		meta.Title = doc.title
	}
	if meta.Description == "" {
		meta.Description = doc.description
	}
	return meta
}
