package markup

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const anchorTag = "A"

// CompletionFunc receives the Markdown produced by one Convert call.
type CompletionFunc func(markdown string)

type Option func(*Serializer)

func WithWhitelist(w Whitelist) Option {
	return func(s *Serializer) { s.convertible = w }
}

func WithRules(r RuleTable) Option {
	return func(s *Serializer) { s.rules = r }
}

func OnComplete(fn CompletionFunc) Option {
	return func(s *Serializer) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Serializer) {
		if l != nil {
			s.logger = l
		}
	}
}

// Serializer walks a Node tree depth first and emits Markdown. Its whitelist
// and rule table are fixed at construction, so one Serializer may be shared
// by concurrent callers as long as each tree is not mutated during a call.
//
// Recursion depth equals tree depth and is not bounded.
type Serializer struct {
	convertible Whitelist
	rules       RuleTable
	listeners   []CompletionFunc
	logger      *slog.Logger
}

func NewSerializer(opts ...Option) *Serializer {
	s := &Serializer{
		convertible: DefaultConvertible(),
		rules:       DefaultRules(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize returns the Markdown for root without notifying listeners.
func (s *Serializer) Serialize(root Node) (string, error) {
	if isNilNode(root) {
		return "", fmt.Errorf("serialize: nil root: %w", ErrInvalidArgument)
	}
	return s.serialize(root), nil
}

// Convert serializes root and then hands the result to every OnComplete
// listener, in registration order, before returning it.
func (s *Serializer) Convert(root Node) (string, error) {
	out, err := s.Serialize(root)
	if err != nil {
		return "", err
	}
	for _, fn := range s.listeners {
		fn(out)
	}
	return out, nil
}

func (s *Serializer) serialize(n Node) string {
	if isNilNode(n) {
		return ""
	}
	kind := n.Kind()
	tag := ""
	if kind == KindElement {
		tag = n.Tag()
	}

	// A rejected node drops its whole subtree, whitelisted descendants included.
	if kind != KindText && !s.convertible.Contains(tag) {
		if kind == KindElement {
			s.logger.Debug("pruned subtree", "tag", tag)
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(s.rules.Prefix(tag))
	if kind == KindText {
		b.WriteString(strings.TrimSpace(n.Text()))
	} else {
		for _, c := range n.Children() {
			b.WriteString(s.serialize(c))
		}
	}
	b.WriteString(s.rules.Suffix(tag))

	if tag == anchorTag {
		href, _ := n.Attr("href")
		return " " + b.String() + "(" + href + ") "
	}
	return b.String()
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	if h, ok := n.(htmlNode); ok && h.n == nil {
		return true
	}
	return false
}
