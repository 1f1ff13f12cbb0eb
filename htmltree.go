/*
Package htmltree parses HTML-like markup into a lightweight document tree.

	root, err := htmltree.Parse(`<ul class="menu"><li>one</li><li>two</li></ul>`)
	if err != nil {
		…
	}
	items := htmltree.NodesByName(root, "li")   // 2 nodes

Parsing is forgiving: unmatched start tags become leaves, and an end tag
without any open element ends the document. Only lexical problems (an
unterminated tag or comment, a missing closing delimiter of an attribute
value) are errors, and for these no tree is returned at all.

Package htmltree is a thin front to packages parser and dom, which hold the
details of tokenizing, tree building and querying.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/parser"
)

// Node is a node of a document tree.
type Node = dom.Node

// Attribute is a name/value pair to search for.
type Attribute = dom.Attribute

// Parse reads a document and returns the synthetic root of its tree.
// On failure, it returns nil and an error wrapping one of the error
// variables of package parser.
func Parse(doc string) (*Node, error) {
	return parser.Parse(doc)
}

// NodeByName returns the first element with a given tag name, searching
// pre-order from (and including) source.
func NodeByName(source *Node, name string) (*Node, bool) {
	return dom.NodeByName(source, name)
}

// NodeByAttribute returns the first element carrying an attribute with a
// given value, searching pre-order from (and including) source.
func NodeByAttribute(source *Node, attr Attribute) (*Node, bool) {
	return dom.NodeByAttribute(source, attr)
}

// NodesByName returns all elements with a given tag name, in pre-order.
func NodesByName(source *Node, name string) []*Node {
	return dom.NodesByName(source, name)
}

// NodesByAttribute returns all elements carrying an attribute with a given
// value, in pre-order.
func NodesByAttribute(source *Node, attr Attribute) []*Node {
	return dom.NodesByAttribute(source, attr)
}

// FirstChild returns the first child of n, if any.
func FirstChild(n *Node) (*Node, bool) {
	return dom.FirstChild(n)
}
