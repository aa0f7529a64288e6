package markup

import (
	"strings"

	"golang.org/x/net/html"
)

type htmlNode struct {
	n *html.Node
}

func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

// HTMLNode returns the x/net/html node behind a Node built by FromHTML.
func HTMLNode(n Node) (*html.Node, bool) {
	h, ok := n.(htmlNode)
	if !ok {
		return nil, false
	}
	return h.n, true
}

func (h htmlNode) Kind() Kind {
	switch h.n.Type {
	case html.ElementNode:
		return KindElement
	case html.TextNode:
		return KindText
	default:
		return KindOther
	}
}

func (h htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(h.n.Data)
}

func (h htmlNode) Text() string {
	if h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Children() []Node {
	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, htmlNode{n: c})
	}
	return out
}

func (h htmlNode) Attr(key string) (string, bool) {
	for _, a := range h.n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}
