/*
Package dom provides the document tree produced by the parser.

Overview

A document tree consists of nodes, every one of them carrying a payload.
A payload is either a tag, a text fragment or a comment:

    <ul class="menu">       Tag{Name: "ul", Attributes: {"class": "menu"}}
      <li>one</li>          Tag{Name: "li"} ── Text("one")
      <!-- todo -->        Comment(" todo ")
    </ul>

The parser always returns a synthetic root node, a tag called "root", whose
children are the top-level nodes of the document.

Tree Implementation

Nodes are implemented on top of a general purpose tree type
(package tree). In a fully object oriented programming language we would
subclass this tree type, but in Go we resort to composition, thus including
a generic tree node in every DOM node. Children are owned by their parent,
whereas the link from a child to its parent is non-owning.

Equality of nodes is structural: two nodes are equal if their payloads are
equal and their children are pairwise equal. Parent links are never
considered.

Queries

Besides simple pre-order searches for tag names and attribute values,
package dom is able to mirror a tree as a golang.org/x/net/html tree. This
is the basis for rendering a tree as markup and for evaluating CSS selectors
(via package cascadia).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.dom")
}
