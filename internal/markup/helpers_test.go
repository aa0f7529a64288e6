package markup

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseFragment(t *testing.T, src string) Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		t.Fatalf("parse fragment %q: %v", src, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("parse fragment %q: got %d top-level nodes, want 1", src, len(nodes))
	}
	return FromHTML(nodes[0])
}

func parseDocument(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

type testNode struct {
	kind     Kind
	tag      string
	text     string
	attrs    map[string]string
	children []Node
}

func (n *testNode) Kind() Kind       { return n.kind }
func (n *testNode) Tag() string      { return n.tag }
func (n *testNode) Text() string     { return n.text }
func (n *testNode) Children() []Node { return n.children }

func (n *testNode) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func elem(tag string, children ...Node) *testNode {
	return &testNode{kind: KindElement, tag: tag, children: children}
}

func text(s string) *testNode {
	return &testNode{kind: KindText, text: s}
}
