package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tokenStrings(t *testing.T, doc string) []string {
	t.Helper()
	nodes, err := Tokenize(doc)
	if err != nil {
		t.Fatalf("cannot tokenize %q: %v", doc, err)
	}
	var tokens []string
	for _, n := range nodes {
		tokens = append(tokens, n.Payload().String())
	}
	return tokens
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	for i, x := range []struct {
		doc    string
		tokens []string
	}{
		{`<ul class="menu"><li>one</li><li>two</li></ul>`, []string{
			`<ul class="menu">`, `<li>`, `Text("one")`, `</li>`,
			`<li>`, `Text("two")`, `</li>`, `</ul>`},
		},
		{`<a x="1" y='2' z=3 flag>`, []string{`<a flag="" x="1" y="2" z="3">`}},
		{`<a x = "1">`, []string{`<a x="1">`}},
		{`<a title="x>y">t</a>`, []string{`<a title="x>y">`, `Text("t")`, `</a>`}},
		{`<br/><img src="a.png" />`, []string{`<br />`, `<img src="a.png" />`}},
		{`</ li >`, []string{`</li>`}},
		{`<!-- hi --><p>`, []string{`Comment(" hi ")`, `<p>`}},
		{`<!DOCTYPE html><html>`, []string{`<DOCTYPE html="">`, `<html>`}},
		{`<!doctype html>`, []string{`<doctype html="">`}},
		{"  <p>\n  text  </p>\n", []string{`<p>`, `Text("\n  text  ")`, `</p>`, `Text("\n")`}},
		{`hello <b>`, []string{`Text("hello ")`, `<b>`}},
		{`<p>a<br>b</p>`, []string{`<p>`, `Text("a")`, `<br>`, `Text("b")`, `</p>`}},
		{`<p>äöü</p>`, []string{`<p>`, `Text("äöü")`, `</p>`}},
		{"", nil},
		{"  \n ", []string{`Text("  \n ")`}},
		{"<p> \n<b>", []string{`<p>`, `<b>`}},
	} {
		tokens := tokenStrings(t, x.doc)
		if diff := cmp.Diff(x.tokens, tokens); diff != "" {
			t.Logf("test #%d: %q", i, x.doc)
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestTokenizeScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	tokens := tokenStrings(t, `<script>if (a<b) { x = "</p>" }</script><p>`)
	want := []string{`<script>`, `Text("if (a<b) { x = \"</p>\" }")`, `</script>`, `<p>`}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
	tokens = tokenStrings(t, `<script src="x.js"></script>`)
	want = []string{`<script src="x.js">`, `</script>`}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("token mismatch for empty script (-want +got):\n%s", diff)
	}
	tokens = tokenStrings(t, `<script src="x.js"/>`)
	want = []string{`<script src="x.js" />`}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("token mismatch for self-closing script (-want +got):\n%s", diff)
	}
}

func TestTokenizeEmptyAttributeValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	for _, doc := range []string{`<a x="">`, `<a x=''>`, `<a x=>`} {
		nodes, err := Tokenize(doc)
		if err != nil {
			t.Fatalf("cannot tokenize %q: %v", doc, err)
		}
		tag, ok := nodes[0].Tag()
		if !ok {
			t.Fatalf("expected %q to yield a tag, is %v", doc, nodes[0])
		}
		if v, ok := tag.Attr("x"); !ok || v != "" {
			t.Errorf("expected attribute x of %q to be empty, is %q (present=%v)", doc, v, ok)
		}
	}
}

func TestTokenizeSelfClosing(t *testing.T) {
	nodes, err := Tokenize(`<br/><hr /></p/>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(nodes))
	}
	for i, n := range nodes[:2] {
		tag, _ := n.Tag()
		if !tag.SelfClosing || tag.HasAttributes() {
			t.Errorf("expected token #%d to be self-closing without attributes, is %v", i, tag)
		}
	}
	if tag, _ := nodes[2].Tag(); !tag.EndTag || tag.SelfClosing {
		t.Errorf("expected end tag not to be self-closing, is %v", tag)
	}
}

func TestTokenizeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	for i, x := range []struct {
		doc string
		err error
	}{
		{`<div`, ErrUnterminatedTag},
		{`<div class="`, ErrUnterminatedTag},
		{`<a title="x>`, ErrUnterminatedTag},
		{`<a title='x>y'>`, ErrMissingClosingDelimiter},
		{`<a title='x>`, ErrUnterminatedTag},
		{`<p><!-- open`, ErrUnterminatedComment},
		{`<script>var x;`, ErrUnterminatedTag},
		{`<script>`, ErrUnterminatedTag},
		{`<p><script type="module">`, ErrUnterminatedTag},
	} {
		nodes, err := Tokenize(x.doc)
		if !errors.Is(err, x.err) {
			t.Logf("test #%d: %q", i, x.doc)
			t.Errorf("expected error %v, got %v", x.err, err)
		}
		if nodes != nil {
			t.Errorf("expected no tokens on error, have %d", len(nodes))
		}
	}
}

func TestTokenizeErrorPosition(t *testing.T) {
	_, err := Tokenize("<p>\n  <div")
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected a ScanError, got %v", err)
	}
	if scanErr.Offset != 6 || scanErr.Line != 2 || scanErr.Col != 3 {
		t.Errorf("expected error at offset 6 (2:3), is at %d (%d:%d)",
			scanErr.Offset, scanErr.Line, scanErr.Col)
	}
	t.Logf("error message: %v", err)
}

func TestTokenizeNodesAreUnattached(t *testing.T) {
	nodes, err := Tokenize(`<p>x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range nodes {
		if n.HasParent() || n.ChildCount() != 0 {
			t.Errorf("expected token %v to be unattached", n)
		}
	}
	if !dom.PayloadEqual(nodes[1].Payload(), dom.Text("x")) {
		t.Errorf("expected second token to be text \"x\", is %v", nodes[1])
	}
}
