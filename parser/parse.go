package parser

import (
	"github.com/npillmayer/htmltree/dom"
)

// Parse reads a document and returns the root of its tree. The root is a
// synthetic tag named dom.RootName, with the top-level nodes of the document
// as its children.
//
// If the document is malformed in a way the tokenizer cannot recover from,
// Parse returns no tree and an error wrapping one of the Err… variables of
// this package.
func Parse(doc string) (*dom.Node, error) {
	nodes, err := Tokenize(doc)
	if err != nil {
		tracer().Errorf("cannot parse document: %v", err)
		return nil, err
	}
	root := dom.NewElement(dom.RootName)
	newBuilder(nodes).build(root, 0)
	return root, nil
}
