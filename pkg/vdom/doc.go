// Package vdom provides the in-memory node tree that gallery pages render to.
//
// VNode is the building block for elements, text, fragments, embedded
// components and raw HTML. Anything with a Render() *VNode method is a
// Component; pages, directory listings and the layout are all Components.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be nil (ignored), Attr, []Attr, *VNode, []*VNode,
// Component or string (shorthand for a text node).
package vdom
