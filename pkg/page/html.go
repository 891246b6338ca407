package page

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/gallery/pkg/vdom"
)

func parseHTML(body []byte) (document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return document{}, err
	}

	var doc document
	var bodyNode *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if doc.title == "" {
					doc.title = extractText(n)
				}
			case "meta":
				if strings.EqualFold(getAttr(n, "name"), "description") && doc.description == "" {
					doc.description = strings.TrimSpace(getAttr(n, "content"))
				}
			case "body":
				bodyNode = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	var buf bytes.Buffer
	if bodyNode != nil {
		for c := bodyNode.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return document{}, err
			}
		}
	}
	doc.body = vdom.Raw(strings.TrimSpace(buf.String()))

	return doc, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.Join(strings.Fields(n.Data), " ")
	}

	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := extractText(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
