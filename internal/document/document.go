package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

const DefaultSelector = "body"

type Document struct {
	source string
	doc    *goquery.Document
}

func Parse(source string, r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return &Document{source: source, doc: doc}, nil
}

func (d *Document) Source() string {
	return d.source
}

// Select returns the elements matching a CSS selector. An empty selector
// selects the body.
func (d *Document) Select(selector string) (*goquery.Selection, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		selector = DefaultSelector
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %v", ErrInvalidInput, selector, err)
	}
	sel := d.doc.FindMatcher(m)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("selector %q in %s: %w", selector, d.source, ErrNotFound)
	}
	return sel, nil
}

// Path renders the element ancestry of n, outermost first, e.g. "BODY > DIV > P".
func Path(n *html.Node) string {
	var parts []string
	for c := n; c != nil; c = c.Parent {
		if c.Type != html.ElementNode || c.Data == "html" {
			continue
		}
		parts = append(parts, strings.ToUpper(c.Data))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ")
}
