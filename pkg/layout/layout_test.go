package layout

import (
	"errors"
	"testing"

	"github.com/vango-dev/gallery/internal/logging"
	"github.com/vango-dev/gallery/pkg/render"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func renderString(t *testing.T, c vdom.Component) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Embed(c))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestWrap(t *testing.T) {
	content := vdom.Static(vdom.P(vdom.Text("hello")))
	overlay := vdom.Static(vdom.Div(vdom.ID("overlay")))

	tests := []struct {
		name    string
		overlay vdom.Component
		want    string
	}{
		{"no overlay", nil, `<div class="relative"><p>hello</p></div>`},
		{"overlay", overlay, `<div class="relative"><p>hello</p><div id="overlay"></div></div>`},
		{"noop overlay", Noop, `<div class="relative"><p>hello</p></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, New(tt.overlay).Wrap(content))
			if got != tt.want {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOverlay(t *testing.T) {
	logger := logging.Discard()
	overlay := vdom.Static(vdom.Div(vdom.ID("toolbar")))
	calls := 0
	ok := func() (vdom.Component, error) {
		calls++
		return overlay, nil
	}

	if got := ResolveOverlay(false, ok, logger); got != nil {
		t.Errorf("disabled overlay = %v, want nil", got)
	}
	if calls != 0 {
		t.Errorf("loader called %d times while disabled", calls)
	}
	if got := ResolveOverlay(true, nil, logger); got != nil {
		t.Errorf("nil loader = %v, want nil", got)
	}

	got := ResolveOverlay(true, ok, logger)
	if calls != 1 {
		t.Errorf("loader calls = %d, want 1", calls)
	}
	if html := renderString(t, got); html != `<div id="toolbar"></div>` {
		t.Errorf("overlay render = %q", html)
	}
}

func TestResolveOverlayFailures(t *testing.T) {
	logger := logging.Discard()

	tests := []struct {
		name string
		load OverlayLoader
	}{
		{"error", func() (vdom.Component, error) { return nil, errors.New("missing module") }},
		{"panic", func() (vdom.Component, error) { panic("boom") }},
		{"nil component", func() (vdom.Component, error) { return nil, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveOverlay(true, tt.load, logger); got != Noop {
				t.Errorf("ResolveOverlay() = %v, want Noop", got)
			}
		})
	}
}

type panicky struct{}

func (panicky) Render() *vdom.VNode { panic("render failed") }

func TestGuardRecoversRenderPanic(t *testing.T) {
	overlay := ResolveOverlay(true, func() (vdom.Component, error) { return panicky{}, nil }, logging.Discard())

	content := vdom.Static(vdom.Text("page"))
	got := renderString(t, New(overlay).Wrap(content))
	if got != `<div class="relative">page</div>` {
		t.Errorf("render = %q", got)
	}
}

func TestSetOverlayAfterWrap(t *testing.T) {
	l := New(nil)
	wrapped := l.Wrap(vdom.Static(vdom.Text("page")))
	if l.HasOverlay() {
		t.Fatal("HasOverlay() = true before SetOverlay")
	}

	l.SetOverlay(vdom.Static(vdom.Span(vdom.Text("tb"))))
	if got := renderString(t, wrapped); got != `<div class="relative">page<span>tb</span></div>` {
		t.Errorf("render = %q", got)
	}
}
