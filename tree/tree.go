package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidFilter is returned if a search is started without a predicate.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a search is started at a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for the various search functions to
// collect a selection of nodes.
// test is the node under test, node is the node the search started at.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Action is a function type to operate on tree nodes during a walk.
// Returning false prunes the walk below n; returning an error stops
// the walk altogether.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (descend bool, err error)

// Walk traverses a tree top-down and depth-first, starting at (and including)
// node. Parents are visited before their children, children are visited in
// document order (pre-order).
func (node *Node[T]) Walk(action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	if action == nil {
		return ErrInvalidFilter
	}
	return walk(node, node.Parent(), 0, action)
}

func walk[T comparable](n *Node[T], parent *Node[T], position int, action Action[T]) error {
	descend, err := action(n, parent, position)
	if err != nil || !descend {
		return err
	}
	for i, ch := range n.Children() {
		if ch == nil {
			continue
		}
		if err = walk(ch, n, i, action); err != nil {
			return err
		}
	}
	return nil
}

// Find searches the (sub-)tree starting at (and including) node and returns
// the first node in pre-order for which predicate matches.
func (node *Node[T]) Find(predicate Predicate[T]) (*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var found *Node[T]
	err := node.Walk(func(n *Node[T], _ *Node[T], _ int) (bool, error) {
		if found != nil {
			return false, nil
		}
		match, err := predicate(n, node)
		if err != nil {
			return false, err
		}
		if match != nil {
			tracer().Debugf("predicate matched node %s", match)
			found = match
			return false, nil
		}
		return true, nil
	})
	return found, err
}

// FindAll searches the (sub-)tree starting at (and including) node and returns
// all nodes for which predicate matches, in pre-order. The search continues
// below matching nodes.
func (node *Node[T]) FindAll(predicate Predicate[T]) ([]*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var selection []*Node[T]
	err := node.Walk(func(n *Node[T], _ *Node[T], _ int) (bool, error) {
		match, err := predicate(n, node)
		if err != nil {
			return false, err
		}
		if match != nil {
			selection = append(selection, match)
		}
		return true, nil
	})
	tracer().Debugf("predicate selected %d nodes", len(selection))
	return selection, err
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func (node *Node[T]) AncestorWith(predicate Predicate[T]) (*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		match, err := predicate(anc, node)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil // no matching ancestor found, not an error
}
