package markup

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func TestSerialize_Scenarios(t *testing.T) {
	tt := []struct {
		name  string
		input string
		want  string
	}{
		{name: "heading", input: `<h1>Title</h1>`, want: "# Title\n\n"},
		{name: "heading level 3", input: `<h3>Deep</h3>`, want: "### Deep\n\n"},
		{name: "heading level 6", input: `<h6>Deepest</h6>`, want: "###### Deepest\n\n"},
		{name: "list", input: `<ul><li>One</li><li>Two</li></ul>`, want: " - One\n - Two\n"},
		{name: "ordered list", input: `<ol><li>One</li></ol>`, want: " - One\n"},
		{name: "anchor", input: `<a href="http://x.com">link</a>`, want: " [link](http://x.com) "},
		{name: "anchor without href", input: `<a>link</a>`, want: " [link]() "},
		{name: "horizontal rule", input: `<hr>`, want: HorizontalRule},
		{name: "paragraph", input: `<p>Hello</p>`, want: "Hello\n\n"},
		{name: "div", input: `<div>Hello</div>`, want: "Hello\n\n"},
		{name: "blockquote", input: `<blockquote>Quote</blockquote>`, want: "> Quote\n\n"},
		{name: "pre", input: `<pre>x := 1</pre>`, want: "    x := 1\n\n"},
		{name: "code", input: `<code>x := 1</code>`, want: "    x := 1\n\n"},
		{name: "span adds nothing", input: `<span>a<span>b</span></span>`, want: "ab"},
		{name: "text is trimmed", input: `<p>   spaced   </p>`, want: "spaced\n\n"},
		{name: "nested blocks keep blank lines", input: `<div><p>One</p></div>`, want: "One\n\n\n\n"},
		{name: "quoted paragraph", input: `<blockquote><p>Q</p></blockquote>`, want: "> Q\n\n\n\n"},
		{name: "inline anchor", input: `<p>Hello <a href="/x">world</a>!</p>`, want: "Hello [world](/x) !\n\n"},
		{name: "markdown characters pass through", input: `<p>*a* _b_ [c]</p>`, want: "*a* _b_ [c]\n\n"},
		{name: "comment contributes nothing", input: `<p>a<!-- note -->b</p>`, want: "ab\n\n"},
		{name: "unlisted inline element is dropped", input: `<p>a<em>b</em>c</p>`, want: "ac\n\n"},
		{name: "pruned container hides heading", input: `<section><h1>Title</h1></section>`, want: ""},
		{name: "pruned script", input: `<script><h1>Title</h1></script>`, want: ""},
		{name: "pruned inside whitelisted parent", input: `<div>keep<nav><p>drop</p></nav></div>`, want: "keep\n\n"},
	}

	s := NewSerializer()
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Serialize(parseFragment(t, tc.input))
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Serialize(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestSerialize_TextNodeTrimmed(t *testing.T) {
	got, err := NewSerializer().Serialize(text("  hello  "))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != "hello" {
		t.Fatalf("Serialize(text) = %q, want %q", got, "hello")
	}
}

func TestSerialize_CustomNodeTree(t *testing.T) {
	link := elem("A", text("docs"))
	link.attrs = map[string]string{"href": "https://example.com/docs"}
	root := elem("BODY",
		elem("H2", text("Intro")),
		elem("UL", elem("LI", text(" first ")), elem("LI", link)),
		&testNode{kind: KindOther, children: []Node{elem("H1", text("hidden"))}},
		elem("HR"),
	)

	got, err := NewSerializer().Serialize(root)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := "## Intro\n\n - first\n -  [docs](https://example.com/docs) \n" + HorizontalRule
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_DocumentNodeIsPruned(t *testing.T) {
	doc := parseDocument(t, `<html><body><h1>Title</h1></body></html>`)
	s := NewSerializer()

	got, err := s.Serialize(FromHTML(doc))
	if err != nil {
		t.Fatalf("Serialize(document): %v", err)
	}
	if got != "" {
		t.Fatalf("document node should contribute nothing, got %q", got)
	}

	got, err = s.Serialize(FromHTML(findElement(doc, "body")))
	if err != nil {
		t.Fatalf("Serialize(body): %v", err)
	}
	if got != "# Title\n\n" {
		t.Fatalf("Serialize(body) = %q", got)
	}
}

func TestSerialize_NilRoot(t *testing.T) {
	s := NewSerializer()
	if _, err := s.Serialize(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Serialize(nil) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := s.Serialize(FromHTML(nil)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Serialize(FromHTML(nil)) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := s.Serialize(htmlNode{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Serialize(zero htmlNode) err = %v, want ErrInvalidArgument", err)
	}
}

func TestSerialize_IsPure(t *testing.T) {
	doc := parseDocument(t, `<body><h1>T</h1><ul><li>a</li></ul><a href="/x">y</a><section><p>z</p></section></body>`)
	render := func() string {
		var b bytes.Buffer
		if err := html.Render(&b, doc); err != nil {
			t.Fatalf("render: %v", err)
		}
		return b.String()
	}
	before := render()
	body := FromHTML(findElement(doc, "body"))
	s := NewSerializer()

	first, err := s.Serialize(body)
	if err != nil {
		t.Fatalf("first Serialize: %v", err)
	}
	second, err := s.Serialize(body)
	if err != nil {
		t.Fatalf("second Serialize: %v", err)
	}
	if first != second {
		t.Fatalf("outputs differ:\n%q\n%q", first, second)
	}
	if after := render(); after != before {
		t.Fatalf("tree was mutated:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestSerialize_SuffixUsesSameTagAsPrefix(t *testing.T) {
	rules := NewRuleTable(
		map[string]string{"LI": "<", "P": "("},
		map[string]string{"LI": ">", "P": ")"},
	)
	s := NewSerializer(WithRules(rules))

	got, err := s.Serialize(parseFragment(t, `<li><p>x</p><span>y</span></li>`))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != "<(x)y>" {
		t.Fatalf("Serialize = %q, want %q", got, "<(x)y>")
	}
}

func TestSerialize_CustomWhitelist(t *testing.T) {
	s := NewSerializer(WithWhitelist(NewWhitelist("SECTION", "H1")))
	got, err := s.Serialize(parseFragment(t, `<section><h1>Title</h1><p>gone</p></section>`))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != "# Title\n\n" {
		t.Fatalf("Serialize = %q", got)
	}
}

func TestSerialize_LogsPrunedSubtree(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSerializer(WithLogger(logger))

	if _, err := s.Serialize(parseFragment(t, `<div><section><h1>x</h1></section></div>`)); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "pruned subtree") || !strings.Contains(out, "tag=SECTION") {
		t.Fatalf("expected pruned subtree log, got: %s", out)
	}
	if strings.Contains(out, "tag=H1") {
		t.Fatalf("descendants of a pruned node must not be visited: %s", out)
	}
}

func TestConvert_NotifiesListenersInOrder(t *testing.T) {
	var got []string
	s := NewSerializer(
		OnComplete(func(md string) { got = append(got, "first:"+md) }),
		OnComplete(nil),
		OnComplete(func(md string) { got = append(got, "second:"+md) }),
	)

	if _, err := s.Serialize(parseFragment(t, `<p>quiet</p>`)); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Serialize must not notify, got %v", got)
	}

	out, err := s.Convert(parseFragment(t, `<h2>Done</h2>`))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := []string{"first:" + out, "second:" + out}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.Convert(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Convert(nil) err = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("failed Convert must not notify, got %v", got)
	}
}

func TestSerializer_OnlyConvertsToMarkdown(t *testing.T) {
	typ := reflect.TypeOf(&Serializer{})
	var methods []string
	for i := 0; i < typ.NumMethod(); i++ {
		methods = append(methods, typ.Method(i).Name)
	}
	sort.Strings(methods)
	if diff := cmp.Diff([]string{"Convert", "Serialize"}, methods); diff != "" {
		t.Fatalf("unexpected exported methods (-want +got):\n%s", diff)
	}
	nodeType := reflect.TypeOf((*Node)(nil)).Elem()
	for _, name := range methods {
		fn := reflect.ValueOf(&Serializer{}).MethodByName(name).Type()
		if fn.NumIn() != 1 || fn.In(0) != nodeType {
			t.Fatalf("method %s should take a single Node, got %s", name, fn)
		}
	}
}
