package dom

import (
	"github.com/npillmayer/htmltree/tree"
)

// Attribute is a name/value pair to search for.
type Attribute struct {
	Name, Value string
}

// NodeIsTag is a predicate to match element nodes with a given tag name.
// It is intended to be used with the search functions of package tree.
func NodeIsTag(name string) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], _ *tree.Node[*Node]) (*tree.Node[*Node], error) {
		if tag, ok := test.Payload.Tag(); ok && tag.Name == name {
			return test, nil
		}
		return nil, nil
	}
}

// NodeHasAttribute is a predicate to match element nodes carrying an
// attribute with a given value.
func NodeHasAttribute(attr Attribute) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], _ *tree.Node[*Node]) (*tree.Node[*Node], error) {
		if tag, ok := test.Payload.Tag(); ok {
			if v, ok := tag.Attr(attr.Name); ok && v == attr.Value {
				return test, nil
			}
		}
		return nil, nil
	}
}

// NodeIsText is a predicate to match text nodes.
func NodeIsText() tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], _ *tree.Node[*Node]) (*tree.Node[*Node], error) {
		if _, ok := test.Payload.payload.(Text); ok {
			return test, nil
		}
		return nil, nil
	}
}

// Find returns the first node in pre-order, starting at (and including) n,
// for which predicate matches.
func (n *Node) Find(predicate tree.Predicate[*Node]) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	found, err := n.Node.Find(predicate)
	if err != nil || found == nil {
		return nil, false
	}
	return found.Payload, true
}

// FindAll returns all nodes in pre-order, starting at (and including) n,
// for which predicate matches.
func (n *Node) FindAll(predicate tree.Predicate[*Node]) []*Node {
	if n == nil {
		return nil
	}
	selection, err := n.Node.FindAll(predicate)
	if err != nil {
		tracer().Errorf("search failed: %v", err)
		return nil
	}
	nodes := make([]*Node, len(selection))
	for i, sel := range selection {
		nodes[i] = sel.Payload
	}
	return nodes
}

// NodeByName returns the first element node with tag name name, searching
// pre-order from (and including) source.
func NodeByName(source *Node, name string) (*Node, bool) {
	return source.Find(NodeIsTag(name))
}

// NodeByAttribute returns the first element node carrying attribute
// attr.Name with value attr.Value, searching pre-order from (and
// including) source.
func NodeByAttribute(source *Node, attr Attribute) (*Node, bool) {
	return source.Find(NodeHasAttribute(attr))
}

// NodesByName returns all element nodes with tag name name, in pre-order.
func NodesByName(source *Node, name string) []*Node {
	return source.FindAll(NodeIsTag(name))
}

// NodesByAttribute returns all element nodes carrying attribute attr.Name
// with value attr.Value, in pre-order.
func NodesByAttribute(source *Node, attr Attribute) []*Node {
	return source.FindAll(NodeHasAttribute(attr))
}

// FirstChild returns the first child of n, if any.
func FirstChild(n *Node) (*Node, bool) {
	return n.FirstChild()
}

// Ancestor returns the nearest ancestor of n which is an element with tag
// name name. n itself is not considered.
func Ancestor(n *Node, name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	anc, err := n.Node.AncestorWith(NodeIsTag(name))
	if err != nil || anc == nil {
		return nil, false
	}
	return anc.Payload, true
}
