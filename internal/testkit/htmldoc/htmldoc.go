// Package htmldoc parses rendered pages for structural assertions in tests.
package htmldoc

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Doc is a parsed HTML response body.
type Doc struct {
	root *html.Node
}

// Parse parses body or fails the test.
func Parse(t testing.TB, body string) Doc {
	t.Helper()
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return Doc{root: root}
}

// Text returns the visible text with whitespace collapsed.
func (d Doc) Text() string {
	return NodeText(d.root)
}

// HasText reports whether the visible text contains s.
func (d Doc) HasText(s string) bool {
	return strings.Contains(d.Text(), s)
}

// Find returns elements named tag whose attributes match the key/value
// pairs. A "class" pair matches when the element carries that class token.
// An empty tag matches any element.
func (d Doc) Find(tag string, attrs ...string) []*html.Node {
	var found []*html.Node
	for n := range d.root.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}
		if tag != "" && n.Data != tag {
			continue
		}
		if matches(n, attrs) {
			found = append(found, n)
		}
	}
	return found
}

// Has reports whether at least one element matches Find.
func (d Doc) Has(tag string, attrs ...string) bool {
	return len(d.Find(tag, attrs...)) > 0
}

// First returns the first match or nil.
func (d Doc) First(tag string, attrs ...string) *html.Node {
	found := d.Find(tag, attrs...)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Links returns every anchor href in document order.
func (d Doc) Links() []string {
	var hrefs []string
	for _, n := range d.Find("a") {
		hrefs = append(hrefs, Attr(n, "href"))
	}
	return hrefs
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries key, including boolean attributes.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	return slices.ContainsFunc(n.Attr, func(a html.Attribute) bool { return a.Key == key })
}

// NodeText returns the text under n with whitespace collapsed.
func NodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func matches(n *html.Node, attrs []string) bool {
	for i := 0; i+1 < len(attrs); i += 2 {
		key, want := attrs[i], attrs[i+1]
		got := Attr(n, key)
		if key == "class" {
			if !slices.Contains(strings.Fields(got), want) {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}
