package render

import (
	"errors"
	"fmt"
	"strings"

	markdown "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"github.com/tengjizhang/demarcate/internal/markup"
)

type Engine string

const (
	EngineDemarcate Engine = "demarcate"
	EngineLibrary   Engine = "library"
)

var ErrUnknownEngine = errors.New("unknown engine")

func ParseEngine(raw string) (Engine, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch Engine(s) {
	case "":
		return EngineDemarcate, nil
	case EngineDemarcate, EngineLibrary:
		return Engine(s), nil
	default:
		return "", fmt.Errorf("%w %q (expected demarcate|library)", ErrUnknownEngine, raw)
	}
}

type Renderer struct {
	serializer *markup.Serializer
	converter  *markdown.Converter
}

func NewRenderer(opts ...markup.Option) *Renderer {
	return &Renderer{
		serializer: markup.NewSerializer(opts...),
		converter:  markdown.NewConverter("", true, nil),
	}
}

func (r *Renderer) Serializer() *markup.Serializer {
	return r.serializer
}

// Render converts every node of sel, in document order, with the chosen engine.
func (r *Renderer) Render(engine Engine, sel *goquery.Selection) (string, error) {
	if sel == nil || sel.Length() == 0 {
		return "", fmt.Errorf("render: empty selection: %w", markup.ErrInvalidArgument)
	}
	switch engine {
	case EngineDemarcate:
		var b strings.Builder
		for _, n := range sel.Nodes {
			out, err := r.serializer.Convert(markup.FromHTML(n))
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		}
		return b.String(), nil
	case EngineLibrary:
		return strings.TrimSpace(r.converter.Convert(sel)), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEngine, engine)
	}
}
