package router

import (
	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// RootPath is the path of the root directory entry.
const RootPath = "/"

// LayoutFunc wraps a renderable in the shared layout.
type LayoutFunc func(vdom.Component) vdom.Component

// DirectoryFunc builds the directory fallback for a base path.
type DirectoryFunc func(base string) vdom.Component

type options struct {
	conv            discovery.Convention
	layout          LayoutFunc
	directory       DirectoryFunc
	pagePrecedence  bool
}

// Option configures Synthesize.
type Option func(*options)

// WithConvention sets the convention used to derive logical paths.
func WithConvention(conv discovery.Convention) Option {
	return func(o *options) {
		o.conv = conv
	}
}

// WithLayout sets the layout every element is wrapped in.
func WithLayout(fn LayoutFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.layout = fn
		}
	}
}

// WithDirectory sets the directory fallback factory.
func WithDirectory(fn DirectoryFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.directory = fn
		}
	}
}

// WithPagePrecedence lets a page replace a synthesized directory entry at
// its path, keeping the directory's position. The root entry is never
// replaced.
func WithPagePrecedence() Option {
	return func(o *options) {
		o.pagePrecedence = true
	}
}

// Synthesize builds the route table for mods.
//
// The first entry claiming a path keeps it. Later modules at the same
// path are dropped, so a page discovered after one of its descendants
// leaves the synthesized directory in place:
//
//	mods := discovery.MustModules(
//	    discovery.Module{Source: "artifacts/a/b.md"},
//	    discovery.Module{Source: "artifacts/a.md"},
//	)
//	router.Synthesize(mods).Paths() // [/ /a/b /a]; /a is a directory
func Synthesize(mods discovery.Modules, opts ...Option) *Table {
	o := options{
		conv:      discovery.DefaultConvention(),
		layout:    func(c vdom.Component) vdom.Component { return c },
		directory: placeholderDirectory,
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := newTable()
	t.add(o.directoryRoute(RootPath))

	for _, mod := range mods.All() {
		logical := o.conv.LogicalPath(mod.Source)
		if logical == o.conv.Index {
			continue
		}

		o.addPage(t, Route{
			Path:    "/" + logical,
			Kind:    KindPage,
			Source:  mod.Source,
			Meta:    mod.Meta,
			Element: o.layout(orEmpty(mod.Component)),
		})

		for _, ancestor := range ancestors(logical) {
			if !t.has(ancestor) {
				t.add(o.directoryRoute(ancestor))
			}
		}
	}
	return t
}

func (o *options) addPage(t *Table, r Route) {
	i, exists := t.index[r.Path]
	switch {
	case !exists:
		t.add(r)
	case o.pagePrecedence && r.Path != RootPath && t.routes[i].Kind == KindDirectory:
		t.replace(r)
	}
}

func (o *options) directoryRoute(base string) Route {
	return Route{
		Path:     base,
		Kind:     KindDirectory,
		BasePath: base,
		Element:  o.layout(o.directory(base)),
	}
}

// ancestors returns the proper ancestors of a logical path as URL paths,
// shallowest first. The root is not included.
func ancestors(logical string) []string {
	var out []string
	for i := 0; i < len(logical); i++ {
		if logical[i] != '/' {
			continue
		}
		if p := "/" + logical[:i]; p != RootPath {
			out = append(out, p)
		}
	}
	return out
}

func orEmpty(c vdom.Component) vdom.Component {
	if c == nil {
		return vdom.Static(vdom.Fragment())
	}
	return c
}

func placeholderDirectory(base string) vdom.Component {
	return vdom.Static(vdom.Div(
		vdom.Class("directory"),
		vdom.Data("base", base),
	))
}
