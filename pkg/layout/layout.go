// Package layout provides the shell every route is rendered in and the
// optional development overlay that can be attached to it.
package layout

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// Layout wraps route content together with an optional overlay.
type Layout struct {
	overlay vdom.Component
}

// New returns a layout. A nil overlay renders nothing.
func New(overlay vdom.Component) *Layout {
	return &Layout{overlay: overlay}
}

// SetOverlay attaches the overlay. Elements already produced by Wrap pick
// it up. Call it before the first render.
func (l *Layout) SetOverlay(overlay vdom.Component) {
	l.overlay = overlay
}

// HasOverlay reports whether an overlay is attached.
func (l *Layout) HasOverlay() bool {
	return l.overlay != nil
}

// Wrap returns c rendered inside the layout:
//
//	<div class="relative">{c}{overlay}</div>
func (l *Layout) Wrap(c vdom.Component) vdom.Component {
	return &wrapped{layout: l, content: c}
}

type wrapped struct {
	layout  *Layout
	content vdom.Component
}

// Render implements vdom.Component.
func (w *wrapped) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("relative"),
		vdom.Embed(w.content),
		vdom.Embed(w.layout.overlay),
	)
}

// OverlayLoader produces the overlay component. It is called at most once.
type OverlayLoader func() (vdom.Component, error)

// Noop is the overlay used when loading fails. It renders nothing.
var Noop vdom.Component = noop{}

type noop struct{}

func (noop) Render() *vdom.VNode { return nil }

// ResolveOverlay loads the overlay once. It returns nil when the overlay is
// disabled or no loader is set. A loader that fails or panics yields Noop;
// the failure is logged at debug level and never returned.
func ResolveOverlay(enabled bool, load OverlayLoader, logger *slog.Logger) (overlay vdom.Component) {
	if !enabled || load == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("overlay unavailable", "error", fmt.Sprint(r))
			overlay = Noop
		}
	}()

	c, err := load()
	if err != nil {
		logger.Debug("overlay unavailable", "error", err)
		return Noop
	}
	if c == nil {
		return Noop
	}
	return Guard(c, logger)
}

// Guard returns a component that renders c and renders nothing if c
// panics.
func Guard(c vdom.Component, logger *slog.Logger) vdom.Component {
	return &guarded{inner: c, logger: logger}
}

type guarded struct {
	inner  vdom.Component
	logger *slog.Logger
}

// Render implements vdom.Component.
func (g *guarded) Render() (node *vdom.VNode) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Debug("overlay render failed", "error", fmt.Sprint(r))
			node = nil
		}
	}()
	return g.inner.Render()
}
