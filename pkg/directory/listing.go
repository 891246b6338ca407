package directory

import (
	"sort"
	"strings"

	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/page"
)

// Entry is one visible page in a listing.
type Entry struct {
	// Path is the URL path of the page.
	Path string

	// Title is the meta title, or the humanized last path segment.
	Title string

	Description string
	Category    string

	// Order is the sorting hint; nil sorts after every hinted entry.
	Order *int

	Source string
}

// Group is a set of entries that share the path segment after a base.
type Group struct {
	// Name is the shared segment. It is empty for the direct children of
	// the base.
	Name string

	// Path is the URL path of the segment, or the base for direct children.
	Path string

	Entries []Entry
}

// Listing is the set of pages shown by directory views. It is immutable
// and safe for concurrent use.
type Listing struct {
	entries []Entry
}

// NewListing collects the visible pages of mods in discovery order.
func NewListing(mods discovery.Modules, conv discovery.Convention) *Listing {
	l := &Listing{}
	seen := make(map[string]bool)
	for _, mod := range mods.All() {
		logical := conv.LogicalPath(mod.Source)
		if logical == conv.Index || mod.Meta.IsHidden() {
			continue
		}
		p := "/" + logical
		if seen[p] {
			continue
		}
		seen[p] = true

		var order *int
		if o, ok := mod.Meta.OrderOf(); ok {
			order = page.Int(o)
		}
		l.entries = append(l.entries, Entry{
			Path:        p,
			Title:       mod.Meta.TitleOr(Humanize(page.DefaultTitle(logical))),
			Description: mod.Meta.DescriptionOf(),
			Category:    category(mod.Meta),
			Order:       order,
			Source:      mod.Source,
		})
	}
	return l
}

func category(m *page.Meta) string {
	if m == nil {
		return ""
	}
	return m.Category
}

// Len returns the number of visible pages.
func (l *Listing) Len() int {
	return len(l.entries)
}

// Under returns the entries below base in discovery order. An empty base
// or "/" selects every entry.
func (l *Listing) Under(base string) []Entry {
	base = normalizeBase(base)
	var out []Entry
	for _, e := range l.entries {
		if below(base, e.Path) {
			out = append(out, e)
		}
	}
	return out
}

// Groups returns the entries below base grouped by the next path segment.
// Direct children come first, then named groups in lexical order.
func (l *Listing) Groups(base string) []Group {
	base = normalizeBase(base)

	var direct []Entry
	named := make(map[string][]Entry)
	for _, e := range l.Under(base) {
		rest := strings.TrimPrefix(e.Path, base)
		rest = strings.TrimPrefix(rest, "/")
		seg, _, nested := strings.Cut(rest, "/")
		if !nested {
			direct = append(direct, e)
			continue
		}
		named[seg] = append(named[seg], e)
	}

	var groups []Group
	if len(direct) > 0 {
		sortEntries(direct)
		groups = append(groups, Group{Path: base, Entries: direct})
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entries := named[name]
		sortEntries(entries)
		groups = append(groups, Group{
			Name:    name,
			Path:    join(base, name),
			Entries: entries,
		})
	}
	return groups
}

// sortEntries orders by hint (missing last), then title, then path.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		case a.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.Path < b.Path
	})
}

func normalizeBase(base string) string {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

func below(base, p string) bool {
	if base == "/" {
		return p != "/"
	}
	return strings.HasPrefix(p, base+"/")
}

func join(base, seg string) string {
	if base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}
