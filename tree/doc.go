/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node owns an ordered slice of
children, and every child knows its parent. The parent link is a weak
pointer, i.e. ownership is strictly top-down. Dropping the last reference
to a root node releases the whole tree, even if clients still hold on
to some inner node; Parent() on such a node will then report no parent.

Search functions

Clients locate nodes with predicates:

   Find(predicate)              // first node in pre-order matching predicate
   FindAll(predicate)           // all nodes in pre-order matching predicate
   AncestorWith(predicate)      // find ancestor with a given predicate
   Walk(action)                 // traverse all nodes top down (depth first)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.tree")
}
