// Package markup turns whitelisted HTML element trees into Markdown text.
package markup

type Kind int

const (
	KindOther Kind = iota
	KindElement
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Node is a read-only view of one tree element. Tag is upper-case and only
// meaningful for elements; Text is only meaningful for text nodes.
type Node interface {
	Kind() Kind
	Tag() string
	Text() string
	Children() []Node
	Attr(key string) (string, bool)
}
