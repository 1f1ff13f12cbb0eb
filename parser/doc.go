/*
Package parser reads a string containing HTML-like markup into a document
tree (see package dom).

The parser is forgiving. It does not know about HTML content
models or entities. It works in two passes:

Tokenizing

A tokenizer scans the document from left to right and produces a flat
sequence of nodes: start tags, end tags, text and comments. White space
immediately in front of a tag is dropped, everything else is kept verbatim.
The body of a <script> element is captured as a single text node, up to
"</script".

Tree Building

The flat sequence is then folded into a tree. A start tag opens an element
if an end tag with the same name follows anywhere in the remainder of the
sequence; nesting is not taken into account. Any end tag then closes the
innermost open element, whatever its name:

    <i>x<b>y</i>z</b>

results in <i> with children "x", <b> and "z", where <b> has the single
child "y".

A start tag without any matching end tag becomes a leaf, as do
self-closing tags like <br/>. An end tag at the outermost level, where no
element is open, ends tree building: it and everything after it is left out
of the tree.

Errors

Scanning errors are fatal: Parse returns no tree at all, but an error
describing the problem and its position (see ScanError). Tree building
never fails.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.parser'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.parser")
}
