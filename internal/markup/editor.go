package markup

import "strings"

// EditRequest is emitted when an editable element is activated.
type EditRequest struct {
	Node Node
	Tag  string
}

type EditFunc func(EditRequest)

type EditorOption func(*EditorTrigger)

func WithEditable(w Whitelist) EditorOption {
	return func(t *EditorTrigger) { t.editable = w }
}

// EditorTrigger decides which elements may open an inline editor and reports
// each activation to its EditFunc. The editable set is lower-case.
type EditorTrigger struct {
	editable  Whitelist
	onRequest EditFunc
}

func NewEditorTrigger(onRequest EditFunc, opts ...EditorOption) *EditorTrigger {
	t := &EditorTrigger{
		editable:  DefaultEditable(),
		onRequest: onRequest,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *EditorTrigger) Editable(n Node) bool {
	if isNilNode(n) || n.Kind() != KindElement {
		return false
	}
	return t.editable.Contains(strings.ToLower(n.Tag()))
}

// Activate emits one EditRequest for n if it is editable and reports whether
// it did.
func (t *EditorTrigger) Activate(n Node) bool {
	if !t.Editable(n) {
		return false
	}
	if t.onRequest != nil {
		t.onRequest(EditRequest{Node: n, Tag: strings.ToLower(n.Tag())})
	}
	return true
}

// Regions lists the editable descendants of root in document order. Root
// itself is not included; nested editable elements are.
func (t *EditorTrigger) Regions(root Node) []Node {
	if isNilNode(root) {
		return nil
	}
	var out []Node
	var walk func(n Node)
	walk = func(n Node) {
		for _, c := range n.Children() {
			if t.Editable(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}
