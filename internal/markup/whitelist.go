package markup

import (
	"sort"
	"strings"
)

// Whitelist is an immutable set of tag identities. Lookups are exact; callers
// normalize case to match the set they query.
type Whitelist struct {
	tags map[string]struct{}
}

func NewWhitelist(tags ...string) Whitelist {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return Whitelist{tags: set}
}

func (w Whitelist) Contains(tag string) bool {
	_, ok := w.tags[tag]
	return ok
}

func (w Whitelist) Len() int {
	return len(w.tags)
}

func (w Whitelist) Tags() []string {
	out := make([]string, 0, len(w.tags))
	for tag := range w.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

var convertibleTags = NewWhitelist(
	"BODY", "DIV", "SPAN",
	"H1", "H2", "H3", "H4", "H5", "H6",
	"LI", "BLOCKQUOTE", "PRE", "CODE",
	"A", "P", "UL", "OL", "HR",
)

var editableTags = NewWhitelist(
	"h1", "h2", "h3", "h4", "h5", "h6",
	"li", "blockquote", "pre", "code", "p",
)

func DefaultConvertible() Whitelist {
	return convertibleTags
}

func DefaultEditable() Whitelist {
	return editableTags
}

func IsConvertible(tag string) bool {
	return convertibleTags.Contains(tag)
}

func IsEditable(tag string) bool {
	return editableTags.Contains(strings.ToLower(tag))
}
