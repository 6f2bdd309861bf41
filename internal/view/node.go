package view

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// El builds an element node. Children that already have a parent are
// skipped so a node can never appear twice in a tree.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c == nil || c.Parent != nil {
			continue
		}
		n.AppendChild(c)
	}
	return n
}

func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attrs turns key/value pairs into attributes, keeping their order.
func Attrs(kv ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// Render serializes a tree fragment.
func Render(n *html.Node) string {
	var sb strings.Builder
	_ = html.Render(&sb, n)
	return sb.String()
}

// WriteDocument writes a full HTML document rooted at n.
func WriteDocument(w io.Writer, n *html.Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return html.Render(w, n)
}

// jsString quotes s as a JavaScript string literal. json.Marshal escapes <,
// > and & so the literal is also safe inside a script element.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// AttrVal returns the value of key on n, or "" when absent.
func AttrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Find returns every element under n (n included) for which match is true,
// in document order.
func Find(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && match(c) {
			out = append(out, c)
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return out
}

// ByClass matches elements carrying class among their classes.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(AttrVal(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return AttrVal(n, "id") == id }
}

func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// TextContent concatenates all text below n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return sb.String()
}
