package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/htmltree/tree"
)

// Node is a node of a document tree, the building block of a DOM.
//
// *Node is the handle clients use to refer to a node. Copying the pointer
// does not copy the node; all copies refer to the same underlying data.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree; must be the first field
	payload          Payload
}

// NewNode creates a new unattached node for a payload.
func NewNode(payload Payload) *Node {
	n := &Node{payload: payload}
	n.Node.Payload = n // tree payload will always reference the node itself
	return n
}

// NewElement creates a new unattached node for a start tag.
func NewElement(name string) *Node {
	return NewNode(NewTag(name))
}

// NewText creates a new unattached text node.
func NewText(text string) *Node {
	return NewNode(Text(text))
}

// NewComment creates a new unattached comment node.
func NewComment(comment string) *Node {
	return NewNode(Comment(comment))
}

// FromTreeNode gets the DOM node from a generic tree node.
func FromTreeNode(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Payload returns the content of a node.
func (n *Node) Payload() Payload {
	return n.payload
}

// Tag returns the tag of an element node. For text and comment nodes it
// returns false.
func (n *Node) Tag() (*Tag, bool) {
	if n == nil {
		return nil, false
	}
	tag, ok := n.payload.(*Tag)
	return tag, ok
}

// IsEndTag is true for nodes representing an end tag (</name>).
func (n *Node) IsEndTag() bool {
	tag, ok := n.Tag()
	return ok && tag.EndTag
}

// AppendChild attaches ch as the last child of n and sets n as the
// parent of ch, in one operation. It returns n to allow for chaining.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch == nil {
		return n
	}
	n.Node.AddChild(&ch.Node)
	return n
}

// Parent returns the parent of a node, or nil for the root of a tree.
// The parent link does not own the parent: if the parent is no longer
// referenced anywhere, Parent returns nil.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return FromTreeNode(n.Node.Parent())
}

// HasParent is true if n is attached to a parent which is still alive.
func (n *Node) HasParent() bool {
	return n.Parent() != nil
}

// Children returns the children of a node in document order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	chs := n.Node.Children()
	children := make([]*Node, 0, len(chs))
	for _, ch := range chs {
		if ch != nil {
			children = append(children, ch.Payload)
		}
	}
	return children
}

// Child returns the child at position i, if any.
func (n *Node) Child(i int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	ch, ok := n.Node.Child(i)
	return FromTreeNode(ch), ok
}

// FirstChild returns the first child of a node, if any.
func (n *Node) FirstChild() (*Node, bool) {
	return n.Child(0)
}

// Text returns the concatenated contents of all text nodes in the sub-tree
// starting at n, in document order.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	err := n.Node.Walk(func(tn *tree.Node[*Node], _ *tree.Node[*Node], _ int) (bool, error) {
		if text, ok := tn.Payload.payload.(Text); ok {
			b.WriteString(string(text))
		}
		return true, nil
	})
	if err != nil {
		tracer().Errorf("collecting text failed: %v", err)
	}
	return b.String()
}

// Equal compares two (sub-)trees structurally: payloads have to be
// equal and children have to be pairwise equal. Parent links are not
// considered.
func (n *Node) Equal(other *Node) bool {
	return Equal(n, other)
}

// Equal compares two (sub-)trees structurally, see (*Node).Equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if !PayloadEqual(a.payload, b.payload) {
		return false
	}
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	bch := b.Children()
	for i, ach := range a.Children() {
		if !Equal(ach, bch[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n == nil {
		return "(Node nil)"
	}
	return fmt.Sprintf("(Node #ch=%d %v)", n.ChildCount(), n.payload)
}
