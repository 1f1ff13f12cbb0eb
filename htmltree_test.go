package htmltree

import (
	"errors"
	"testing"

	"github.com/npillmayer/htmltree/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseAndQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.parser")
	defer teardown()
	//
	root, err := Parse(`<ul class="menu"><li>one</li><li id="x">two</li></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(NodesByName(root, "li")) != 2 {
		t.Errorf("expected 2 <li>, have %d", len(NodesByName(root, "li")))
	}
	li, ok := NodeByAttribute(root, Attribute{Name: "id", Value: "x"})
	if !ok || li.Text() != "two" {
		t.Errorf("expected to find second <li> by id, found %v", li)
	}
	if len(NodesByAttribute(root, Attribute{Name: "id", Value: "y"})) != 0 {
		t.Error("did not expect to find a node with id=y")
	}
	ul, ok := NodeByName(root, "ul")
	first, ok2 := FirstChild(ul)
	if !ok || !ok2 || first.Text() != "one" {
		t.Errorf("expected first child of <ul> to be the first <li>, is %v", first)
	}
}

func TestParseError(t *testing.T) {
	root, err := Parse(`<p>text</p><div`)
	if root != nil || !errors.Is(err, parser.ErrUnterminatedTag) {
		t.Errorf("expected no tree and ErrUnterminatedTag, got %v, %v", root, err)
	}
}
