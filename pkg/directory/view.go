package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// View renders the listing below a base path. It implements
// vdom.Component.
type View struct {
	listing *Listing
	base    string
}

// New returns the directory view for base. A nil listing renders as empty.
//
// The view lists every visible page below base, grouped by the next path
// segment, under a heading and breadcrumbs:
//
//	listing := directory.NewListing(mods, conv)
//	view := directory.New(listing, "/guides")
//	html, _ := render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Embed(view))
func New(listing *Listing, base string) *View {
	if listing == nil {
		listing = &Listing{}
	}
	return &View{listing: listing, base: normalizeBase(base)}
}

// Render implements vdom.Component.
func (v *View) Render() *vdom.VNode {
	groups := v.listing.Groups(v.base)

	var body any
	if len(groups) == 0 {
		body = vdom.P(vdom.Class("directory-empty"), vdom.Text("This directory is empty."))
	} else {
		body = vdom.Range(groups, func(g Group, _ int) *vdom.VNode {
			return renderGroup(g)
		})
	}

	return vdom.Section(
		vdom.Class("directory"),
		vdom.Data("base", v.base),
		breadcrumbs(v.base),
		vdom.H1(vdom.Text(Heading(v.base))),
		body,
	)
}

func renderGroup(g Group) *vdom.VNode {
	return vdom.Section(
		vdom.Class("directory-group"),
		vdom.If(g.Name != "", vdom.H2(
			vdom.A(vdom.PathHref(g.Path), vdom.Text(Humanize(g.Name))),
		)),
		vdom.Ul(vdom.Range(g.Entries, func(e Entry, _ int) *vdom.VNode {
			return vdom.Li(
				vdom.A(vdom.PathHref(e.Path), vdom.Text(e.Title)),
				vdom.If(e.Category != "", vdom.Small(vdom.Class("category"), vdom.Text(e.Category))),
				vdom.If(e.Description != "", vdom.P(vdom.Text(e.Description))),
			)
		})),
	)
}

func breadcrumbs(base string) *vdom.VNode {
	if base == "/" {
		return nil
	}

	segs := strings.Split(strings.TrimPrefix(base, "/"), "/")
	items := []*vdom.VNode{vdom.Li(vdom.A(vdom.Href("/"), vdom.Text("Home")))}
	for i, seg := range segs {
		p := "/" + strings.Join(segs[:i+1], "/")
		if i == len(segs)-1 {
			items = append(items, vdom.Li(vdom.AriaCurrent("page"), vdom.Text(Humanize(seg))))
			continue
		}
		items = append(items, vdom.Li(vdom.A(vdom.PathHref(p), vdom.Text(Humanize(seg)))))
	}

	return vdom.Nav(
		vdom.Class("breadcrumbs"),
		vdom.AriaLabel("Breadcrumb"),
		vdom.Ol(items),
	)
}

// Heading returns the heading shown for a base path.
func Heading(base string) string {
	base = normalizeBase(base)
	if base == "/" {
		return "Directory"
	}
	i := strings.LastIndexByte(base, '/')
	return Humanize(base[i+1:])
}

// Humanize turns a path segment into a display title: separators become
// spaces and words are title-cased.
func Humanize(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	s = strings.Join(strings.Fields(s), " ")
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(s)
}
