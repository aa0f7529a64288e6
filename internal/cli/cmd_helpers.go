package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/tengjizhang/demarcate/internal/document"
	"github.com/tengjizhang/demarcate/internal/markup"
)

func requireApp(getApp func() *App) (*App, error) {
	app := getApp()
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}

func (a *App) selectRegion(ctx context.Context, source, selector string) (*document.Document, *goquery.Selection, error) {
	selector = fallback(selector, a.cfg.Selector)
	doc, err := a.loader.Load(ctx, source)
	if err != nil {
		return nil, nil, fmt.Errorf("load document: %w", err)
	}
	sel, err := doc.Select(selector)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("selected region", "source", doc.Source(), "selector", selector, "matches", sel.Length())
	return doc, sel, nil
}

// collectRegions lists the editable elements of sel: each selected element
// that is itself editable, followed by its editable descendants.
func collectRegions(trigger *markup.EditorTrigger, sel *goquery.Selection) []markup.Node {
	var out []markup.Node
	for _, n := range sel.Nodes {
		root := markup.FromHTML(n)
		if trigger.Editable(root) {
			out = append(out, root)
		}
		out = append(out, trigger.Regions(root)...)
	}
	return out
}

func describeRegion(s *markup.Serializer, index int, n markup.Node) Region {
	r := Region{Index: index, Tag: fallback(lower(n.Tag()), "-")}
	if raw, ok := markup.HTMLNode(n); ok {
		r.Path = document.Path(raw)
	}
	if md, err := s.Serialize(n); err == nil {
		r.Preview = compactText(md, 60)
	}
	return r
}
