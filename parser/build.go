package parser

import (
	"slices"

	"github.com/npillmayer/htmltree/dom"
)

// builder folds a flat sequence of nodes into a tree.
//
// It keeps a cursor into the sequence and, for every tag name, the sorted
// positions of end tags with that name. The matching end tag for a start
// tag is found by binary search.
type builder struct {
	nodes   []*dom.Node
	pos     int
	endTags map[string][]int
}

func newBuilder(nodes []*dom.Node) *builder {
	b := &builder{
		nodes:   nodes,
		endTags: make(map[string][]int),
	}
	for i, n := range nodes {
		if tag, ok := n.Tag(); ok && tag.EndTag {
			b.endTags[tag.Name] = append(b.endTags[tag.Name], i)
		}
	}
	return b
}

// matchingEndTag returns the position of the first end tag named name at or
// after the cursor.
func (b *builder) matchingEndTag(name string) (int, bool) {
	positions := b.endTags[name]
	i, _ := slices.BinarySearch(positions, b.pos)
	if i < len(positions) {
		return positions[i], true
	}
	return -1, false
}

// build appends nodes to parent until it reaches an end tag. An end tag at
// depth 0 is stray and ends building as well: the nodes following it are not
// part of the tree.
//
// An end tag which terminates a level is consumed by the caller's start tag,
// as it has been located with matchingEndTag before descending.
func (b *builder) build(parent *dom.Node, depth int) {
	for b.pos < len(b.nodes) {
		node := b.nodes[b.pos]
		b.pos++
		if tag, ok := node.Tag(); ok {
			if tag.EndTag {
				if depth == 0 {
					tracer().Infof("stray end tag %s, ignoring rest of document", tag)
				}
				return
			}
			if !tag.SelfClosing {
				if end, ok := b.matchingEndTag(tag.Name); ok {
					if end == b.pos {
						b.pos++ // empty element
					} else {
						b.build(node, depth+1)
					}
				}
			}
		}
		parent.AppendChild(node)
	}
}
