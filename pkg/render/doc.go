// Package render serializes vdom trees to HTML.
//
// The Renderer walks a VNode tree and writes HTML with escaped text and
// attribute values. Components are rendered lazily as they are reached,
// so a page's Render method runs once per request.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(vdom.Div(vdom.Text("hi")))
//
// RenderPage wraps a body in a complete HTML document with a head section
// built from PageData.
package render
