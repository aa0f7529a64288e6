package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditorTrigger_Activate(t *testing.T) {
	var requests []EditRequest
	trigger := NewEditorTrigger(func(req EditRequest) { requests = append(requests, req) })

	p := parseFragment(t, `<p>edit me</p>`)
	if !trigger.Activate(p) {
		t.Fatalf("Activate(p) = false, want true")
	}
	if len(requests) != 1 || requests[0].Tag != "p" || requests[0].Node != p {
		t.Fatalf("unexpected requests: %+v", requests)
	}

	for _, src := range []string{`<a href="/x">no</a>`, `<div>no</div>`, `<section>no</section>`} {
		if trigger.Activate(parseFragment(t, src)) {
			t.Errorf("Activate(%s) = true, want false", src)
		}
	}
	if trigger.Activate(text("loose")) || trigger.Activate(nil) {
		t.Fatalf("non-elements must not activate")
	}
	if len(requests) != 1 {
		t.Fatalf("rejected activations emitted requests: %+v", requests)
	}
}

func TestEditorTrigger_Regions(t *testing.T) {
	trigger := NewEditorTrigger(nil)
	root := parseFragment(t, `<div><h1>T</h1><section><p>a</p></section><blockquote><p>b</p></blockquote><ul><li>c</li></ul></div>`)

	var tags []string
	for _, n := range trigger.Regions(root) {
		tags = append(tags, n.Tag())
	}
	want := []string{"H1", "P", "BLOCKQUOTE", "P", "LI"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}

	if got := trigger.Regions(parseFragment(t, `<p>root only</p>`)); len(got) != 0 {
		t.Fatalf("root must not be listed as its own region, got %d", len(got))
	}
	if trigger.Regions(nil) != nil {
		t.Fatalf("Regions(nil) should be nil")
	}
}

func TestEditorTrigger_WithEditable(t *testing.T) {
	var got []string
	trigger := NewEditorTrigger(func(req EditRequest) { got = append(got, req.Tag) }, WithEditable(NewWhitelist("div")))
	trigger.Activate(parseFragment(t, `<div>x</div>`))
	trigger.Activate(parseFragment(t, `<p>x</p>`))
	if diff := cmp.Diff([]string{"div"}, got); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}
