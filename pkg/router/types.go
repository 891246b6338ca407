package router

import (
	"github.com/vango-dev/gallery/pkg/page"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Kind distinguishes page routes from synthesized directory routes.
type Kind int

const (
	// KindDirectory is bound to the directory fallback.
	KindDirectory Kind = iota

	// KindPage is bound to a discovered module.
	KindPage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindPage:
		return "page"
	default:
		return "unknown"
	}
}

// Route is one entry of the route table.
type Route struct {
	// Path is the URL path. It always begins with "/".
	Path string

	// Kind is the route kind.
	Kind Kind

	// BasePath is the listing base of a directory route ("/" for the root).
	// Empty for pages.
	BasePath string

	// Source is the module source path of a page route.
	Source string

	// Meta is the page metadata, nil for directories and pages without any.
	Meta *page.Meta

	// Element is the layout-wrapped renderable.
	Element vdom.Component
}

// Title returns the display title of the route.
func (r Route) Title() string {
	if r.Path == "/" {
		return r.Meta.TitleOr("Index")
	}
	return r.Meta.TitleOr(page.DefaultTitle(r.Path[1:]))
}

// Table is an ordered, path-unique set of routes. It is read-only once
// Synthesize returns and safe for concurrent use.
type Table struct {
	routes []Route
	index  map[string]int
}

func newTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Routes returns the routes in table order. The slice is a copy.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.index[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Paths returns the route paths in table order.
func (t *Table) Paths() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Path
	}
	return out
}

// Count returns the number of routes of kind k.
func (t *Table) Count(k Kind) int {
	n := 0
	for _, r := range t.routes {
		if r.Kind == k {
			n++
		}
	}
	return n
}

func (t *Table) has(path string) bool {
	_, ok := t.index[path]
	return ok
}

func (t *Table) add(r Route) {
	t.index[r.Path] = len(t.routes)
	t.routes = append(t.routes, r)
}

func (t *Table) replace(r Route) {
	t.routes[t.index[r.Path]] = r
}
