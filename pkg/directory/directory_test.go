package directory

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/page"
	"github.com/vango-dev/gallery/pkg/render"
)

var conv = discovery.Convention{Root: "./artifacts/", Ext: ".tsx", Index: discovery.DefaultIndex}

func testListing() *Listing {
	mods := discovery.MustModules(
		discovery.Module{Source: "./artifacts/directory.tsx"},
		discovery.Module{Source: "./artifacts/zeta.tsx"},
		discovery.Module{Source: "./artifacts/alpha.tsx", Meta: &page.Meta{Title: "Alpha", Description: "first letter"}},
		discovery.Module{Source: "./artifacts/secret.tsx", Meta: &page.Meta{Hidden: true}},
		discovery.Module{Source: "./artifacts/guides/setup.tsx", Meta: &page.Meta{Order: page.Int(2)}},
		discovery.Module{Source: "./artifacts/guides/intro.tsx", Meta: &page.Meta{Order: page.Int(1)}},
		discovery.Module{Source: "./artifacts/guides/appendix.tsx"},
		discovery.Module{Source: "./artifacts/guides/advanced/tuning.tsx", Meta: &page.Meta{Category: "ops"}},
		discovery.Module{Source: "./artifacts/api-reference/v1.tsx"},
	)
	return NewListing(mods, conv)
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestNewListing(t *testing.T) {
	l := testListing()
	if l.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", l.Len())
	}
	for _, e := range l.Under("/") {
		if e.Path == "/directory" || e.Path == "/secret" {
			t.Errorf("listing contains %s", e.Path)
		}
	}

	zeta := l.Under("/")[0]
	if zeta.Title != "Zeta" {
		t.Errorf("default title = %q, want %q", zeta.Title, "Zeta")
	}
}

func TestUnder(t *testing.T) {
	l := testListing()

	tests := []struct {
		base string
		want []string
	}{
		{"", []string{"/zeta", "/alpha", "/guides/setup", "/guides/intro", "/guides/appendix", "/guides/advanced/tuning", "/api-reference/v1"}},
		{"/guides", []string{"/guides/setup", "/guides/intro", "/guides/appendix", "/guides/advanced/tuning"}},
		{"guides/", []string{"/guides/setup", "/guides/intro", "/guides/appendix", "/guides/advanced/tuning"}},
		{"/guides/advanced", []string{"/guides/advanced/tuning"}},
		{"/guide", nil},
		{"/zeta", nil},
	}

	for _, tt := range tests {
		got := paths(l.Under(tt.base))
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Under(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}

func TestGroups(t *testing.T) {
	l := testListing()

	root := l.Groups("/")
	var names []string
	for _, g := range root {
		names = append(names, g.Name)
	}
	if want := []string{"", "api-reference", "guides"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("group names = %q, want %q", names, want)
	}
	if got, want := paths(root[0].Entries), []string{"/alpha", "/zeta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("direct entries = %v, want %v", got, want)
	}
	if root[2].Path != "/guides" {
		t.Errorf("group path = %q, want /guides", root[2].Path)
	}

	guides := l.Groups("/guides")
	if len(guides) != 2 {
		t.Fatalf("len(Groups(/guides)) = %d, want 2", len(guides))
	}
	want := []string{"/guides/intro", "/guides/setup", "/guides/appendix"}
	if got := paths(guides[0].Entries); !reflect.DeepEqual(got, want) {
		t.Errorf("ordered entries = %v, want %v", got, want)
	}
	if guides[1].Name != "advanced" || guides[1].Path != "/guides/advanced" {
		t.Errorf("nested group = %q at %q", guides[1].Name, guides[1].Path)
	}

	if got := l.Groups("/missing"); len(got) != 0 {
		t.Errorf("Groups(/missing) = %v, want none", got)
	}
}

func TestSortEntriesTies(t *testing.T) {
	entries := []Entry{
		{Path: "/b", Title: "Same"},
		{Path: "/a", Title: "Same"},
		{Path: "/c", Title: "Other", Order: page.Int(5)},
		{Path: "/d", Title: "Zed", Order: page.Int(5)},
	}
	sortEntries(entries)
	if got, want := paths(entries), []string{"/c", "/d", "/a", "/b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"api-reference", "Api Reference"},
		{"getting_started", "Getting Started"},
		{"v1", "V1"},
		{"already Title", "Already Title"},
		{"--x--", "X"},
	}
	for _, tt := range tests {
		if got := Humanize(tt.in); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		base, want string
	}{
		{"", "Directory"},
		{"/", "Directory"},
		{"/guides/advanced", "Advanced"},
		{"/api-reference/", "Api Reference"},
	}
	for _, tt := range tests {
		if got := Heading(tt.base); got != tt.want {
			t.Errorf("Heading(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func renderView(t *testing.T, v *View) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(v.Render())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestViewRender(t *testing.T) {
	html := renderView(t, New(testListing(), "/guides"))

	for _, want := range []string{
		`data-base="/guides"`,
		`<h1>Guides</h1>`,
		`<a href="/">Home</a>`,
		`aria-current="page"`,
		`<a href="/guides/intro">Intro</a>`,
		`<a href="/guides/advanced">Advanced</a>`,
		`<small class="category">ops</small>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("render missing %s\n%s", want, html)
		}
	}
	if strings.Contains(html, "/zeta") {
		t.Error("render contains a page outside the base")
	}
}

func TestViewRenderRoot(t *testing.T) {
	html := renderView(t, New(testListing(), ""))
	if strings.Contains(html, "breadcrumbs") {
		t.Error("root view should have no breadcrumbs")
	}
	if !strings.Contains(html, "<p>first letter</p>") {
		t.Errorf("description missing:\n%s", html)
	}
}

func TestViewRenderEmpty(t *testing.T) {
	html := renderView(t, New(nil, "/"))
	if !strings.Contains(html, "This directory is empty.") {
		t.Errorf("empty notice missing:\n%s", html)
	}
}

func TestViewRenderEscapesLinks(t *testing.T) {
	l := NewListing(discovery.MustModules(
		discovery.Module{Source: "./artifacts/reports/100%.tsx"},
		discovery.Module{Source: "./artifacts/faq/why?.tsx"},
		discovery.Module{Source: "./artifacts/faq/h#1.tsx"},
		discovery.Module{Source: "./artifacts/odd dir/a b.tsx"},
	), conv)

	tests := []struct {
		base string
		want []string
	}{
		{"/reports", []string{`href="/reports/100%25"`}},
		{"/faq", []string{`href="/faq/why%3F"`, `href="/faq/h%231"`}},
		{"/", []string{`href="/odd%20dir"`, `href="/odd%20dir/a%20b"`}},
	}
	for _, tt := range tests {
		html := renderView(t, New(l, tt.base))
		for _, want := range tt.want {
			if !strings.Contains(html, want) {
				t.Errorf("New(%q) missing %s\n%s", tt.base, want, html)
			}
		}
		for _, bad := range []string{`href="/reports/100%"`, `href="/faq/why?"`, `href="/faq/h#1"`} {
			if strings.Contains(html, bad) {
				t.Errorf("New(%q) contains unescaped %s", tt.base, bad)
			}
		}
	}
}
