package vdom

import "testing"

func TestCreateElementArgs(t *testing.T) {
	child := Span("inner")
	comp := Func(func() *VNode { return Text("c") })

	node := Div(
		nil,
		Class("a", "", "b"),
		[]Attr{ID("x"), {}},
		child,
		[]*VNode{nil, P()},
		comp,
		"text",
	)

	if node.Tag != "div" || node.Kind != KindElement {
		t.Fatalf("node = %+v", node)
	}
	if got := node.Props["class"]; got != "a b" {
		t.Errorf("class = %v, want %q", got, "a b")
	}
	if got := node.Props["id"]; got != "x" {
		t.Errorf("id = %v, want %q", got, "x")
	}
	if len(node.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4", len(node.Children))
	}
	if node.Children[2].Kind != KindComponent {
		t.Errorf("Children[2].Kind = %v, want Component", node.Children[2].Kind)
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "text" {
		t.Errorf("Children[3] = %+v, want text node", node.Children[3])
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(nil, "a", Text("b"), []*VNode{Text("c"), nil})
	if f.Kind != KindFragment {
		t.Errorf("Kind = %v, want Fragment", f.Kind)
	}
	if len(f.Children) != 3 {
		t.Errorf("len(Children) = %d, want 3", len(f.Children))
	}
}

func TestFuncAndStatic(t *testing.T) {
	n := Text("x")
	if Static(n).Render() != n {
		t.Error("Static should render the same node")
	}

	var nilFunc *FuncComponent
	if nilFunc.Render() != nil {
		t.Error("nil FuncComponent should render nil")
	}
}

func TestEmbed(t *testing.T) {
	if Embed(nil) != nil {
		t.Error("Embed(nil) should be nil")
	}
	if Embed(Static(nil)).Kind != KindComponent {
		t.Error("Embed should produce a component node")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "", "b"}, func(s string, _ int) *VNode {
		return If(s != "", Li(s))
	})
	if len(nodes) != 2 {
		t.Errorf("len(Range) = %d, want 2", len(nodes))
	}
}

func TestVKindString(t *testing.T) {
	tests := map[VKind]string{
		KindElement:   "Element",
		KindText:      "Text",
		KindFragment:  "Fragment",
		KindComponent: "Component",
		KindRaw:       "Raw",
		VKind(99):     "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("VKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestPathHref(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/guides/setup", "/guides/setup"},
		{"/reports/100%", "/reports/100%25"},
		{"/faq/why?", "/faq/why%3F"},
		{"/h#1", "/h%231"},
		{"/a b", "/a%20b"},
		{"/{id}", "/%7Bid%7D"},
	}
	for _, tt := range tests {
		if got := PathHref(tt.path).Value; got != tt.want {
			t.Errorf("PathHref(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
