package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<ul class="menu"><li>one</li><li>two</li></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("tree:\n%s", domdbg.Dump(root))
	if !root.IsRoot() {
		t.Errorf("expected parse result to be a root node, is %v", root)
	}
	if root.ChildCount() != 1 {
		t.Fatalf("expected root to have 1 child, has %d", root.ChildCount())
	}
	ul, _ := root.FirstChild()
	if ul.ChildCount() != 2 {
		t.Errorf("expected <ul> to have 2 children, has %d", ul.ChildCount())
	}
	if ul.Parent() != root {
		t.Error("expected parent of <ul> to be root, isn't")
	}
	items := dom.NodesByName(root, "li")
	if len(items) != 2 {
		t.Fatalf("expected to find 2 <li>, found %d", len(items))
	}
	if items[1].Text() != "two" {
		t.Errorf("expected text of second <li> to be \"two\", is %q", items[1].Text())
	}
	menu, ok := dom.NodeByAttribute(root, dom.Attribute{Name: "class", Value: "menu"})
	if !ok || menu != ul {
		t.Errorf("expected to find <ul> by attribute class=menu, found %v", menu)
	}
}

func TestParseEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<ul class="menu"><li>one</li><li>two</li></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	ul := dom.NewNode(&dom.Tag{Name: "ul", Attributes: map[string]string{"class": "menu"}})
	ul.AppendChild(dom.NewElement("li").AppendChild(dom.NewText("one")))
	ul.AppendChild(dom.NewElement("li").AppendChild(dom.NewText("two")))
	expected := dom.NewElement(dom.RootName).AppendChild(ul)
	if !dom.Equal(root, expected) {
		t.Logf("got:\n%s", domdbg.Dump(root))
		t.Logf("expected:\n%s", domdbg.Dump(expected))
		t.Error("expected trees to be equal, aren't")
	}
	other, _ := Parse(`<ul class="menu"><li>one</li><li>three</li></ul>`)
	if dom.Equal(root, other) {
		t.Error("expected trees with different text to be unequal, are equal")
	}
	again, _ := Parse(`<ul class="menu"><li>one</li><li>two</li></ul>`)
	if !root.Equal(again) {
		t.Error("expected parsing the same document twice to yield equal trees")
	}
}

func TestParseUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<div`)
	if !errors.Is(err, ErrUnterminatedTag) {
		t.Errorf("expected ErrUnterminatedTag, got %v", err)
	}
	if root != nil {
		t.Error("expected no tree for malformed document")
	}
	if _, err = Parse(`<div class="`); err == nil {
		t.Error("expected error for unterminated attribute value, got none")
	}
	if _, err = Parse(`<p>x<!-- y</p>`); !errors.Is(err, ErrUnterminatedComment) {
		t.Errorf("expected ErrUnterminatedComment, got %v", err)
	}
}

func TestParseScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	body := `if (a < b && c > d) { s = "<p>"; }`
	root, err := Parse("<script>" + body + "</script><p>x</p>")
	if err != nil {
		t.Fatal(err)
	}
	script, ok := dom.NodeByName(root, "script")
	if !ok || script.ChildCount() != 1 {
		t.Fatalf("expected <script> with a single child, is %v", script)
	}
	ch, _ := script.FirstChild()
	if !dom.PayloadEqual(ch.Payload(), dom.Text(body)) {
		t.Errorf("expected script body to be verbatim text, is %v", ch)
	}
	if len(dom.NodesByName(root, "p")) != 1 {
		t.Error("expected exactly one <p> outside of the script")
	}
}

func TestParseEndTagClosesInnermost(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<i>x<b>y</i>z</b>`)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("tree:\n%s", domdbg.Dump(root))
	b := dom.NewElement("b").AppendChild(dom.NewText("y"))
	i := dom.NewElement("i").
		AppendChild(dom.NewText("x")).
		AppendChild(b).
		AppendChild(dom.NewText("z"))
	expected := dom.NewElement(dom.RootName).AppendChild(i)
	if !dom.Equal(root, expected) {
		t.Errorf("expected </i> to close <b> and </b> to close <i>, tree is\n%s", domdbg.Dump(root))
	}
}

func TestParseLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<p>a<br>b<img src="x.png"/></p><hr>`)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := dom.NodeByName(root, "p")
	if p.ChildCount() != 4 {
		t.Errorf("expected <p> to have 4 children, has %d", p.ChildCount())
	}
	for _, name := range []string{"br", "img", "hr"} {
		n, ok := dom.NodeByName(root, name)
		if !ok || n.ChildCount() != 0 {
			t.Errorf("expected <%s> to be a leaf, is %v", name, n)
		}
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
}

func TestParseEmptyElement(t *testing.T) {
	root, err := Parse(`<div></div><span></span>`)
	if err != nil {
		t.Fatal(err)
	}
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	for _, ch := range root.Children() {
		if ch.ChildCount() != 0 || ch.IsEndTag() {
			t.Errorf("expected %v to be an empty start tag", ch)
		}
	}
}

func TestParseStrayEndTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`</p>one<b>two</b></div>three`)
	if err != nil {
		t.Fatal(err)
	}
	if root.ChildCount() != 0 {
		t.Errorf("expected a leading stray end tag to end the document, tree is\n%s", domdbg.Dump(root))
	}
	root, err = Parse(`<b>x</b></i><p>y</p>`)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("tree:\n%s", domdbg.Dump(root))
	if root.ChildCount() != 1 {
		t.Fatalf("expected root to have 1 child, has %d", root.ChildCount())
	}
	b, _ := root.FirstChild()
	if tag, ok := b.Tag(); !ok || tag.Name != "b" || b.Text() != "x" {
		t.Errorf("expected <b> with text \"x\", is %v", b)
	}
	if _, ok := dom.NodeByName(root, "p"); ok {
		t.Error("did not expect <p> after the stray </i> to be part of the tree")
	}
}

func TestParseTrailingWhiteSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse("<p>a</p>\n")
	if err != nil {
		t.Fatal(err)
	}
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, tree is\n%s", domdbg.Dump(root))
	}
	last, _ := root.Child(1)
	if text, ok := last.Payload().(dom.Text); !ok || text != "\n" {
		t.Errorf("expected trailing new-line to be a text node, is %v", last)
	}
}

func TestParseTextContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	doc := `<html><head><title>T</title></head><body><h1>Hello, </h1>` +
		`<p>wörld <em>and</em> more</p><!-- not text --></body></html>`
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if root.Text() != "THello, wörld and more" {
		t.Errorf("expected text content to be preserved, is %q", root.Text())
	}
	if len(root.FindAll(dom.NodeIsText())) != 5 {
		t.Errorf("expected 5 text nodes, have %d", len(root.FindAll(dom.NodeIsText())))
	}
	body, _ := dom.NodeByName(root, "body")
	if body.Parent() == nil || body.Parent().Parent() != root {
		t.Error("expected <body> to be a grandchild of root")
	}
}

func TestParseNoEndTagsInTree(t *testing.T) {
	root, err := Parse(strings.Repeat(`<div><p>x</p></div>`, 20))
	if err != nil {
		t.Fatal(err)
	}
	if len(dom.NodesByName(root, "div")) != 20 {
		t.Errorf("expected 20 <div>, have %d", len(dom.NodesByName(root, "div")))
	}
	var check func(n *dom.Node)
	check = func(n *dom.Node) {
		if n.IsEndTag() {
			t.Errorf("did not expect end tag %v in tree", n)
		}
		for _, ch := range n.Children() {
			check(ch)
		}
	}
	check(root)
}
