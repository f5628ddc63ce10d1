/*
Package btree provides an in-memory ordered key/value index organized as a
multiway balanced search tree (B-tree).

Keys are kept sorted across the tree and every operation is logarithmic in the
number of entries. The shape of the tree is parameterized by its order, the
maximum number of children a node may have. Every node therefore holds at most
order-1 keys and, unless it is the root, at least ⌈order/2⌉-1 keys. All leaves
sit at the same depth.

Mutations restore these bounds before returning:
  - Insert places a new key into a leaf. An overflowing node is split in two
    and its middle entry is promoted into the parent, possibly cascading up to
    a new root.
  - Remove deletes from a leaf (an internal key is first replaced by its
    in-order successor). An underflowing node borrows an entry from its left or
    right sibling, or is merged with a sibling and the separating parent entry,
    possibly cascading up to a root collapse.

Tree is not safe for concurrent use. Clients sharing a tree between goroutines
have to serialize access themselves.

Debugging aids:
  - `Check` validates all structural invariants,
  - `String` lists parent→child edges in level order,
  - `ToDot` outputs the node graph in Graphviz DOT format,
  - `Print` renders the tree level by level to a (color) console.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kvtree'
func tracer() tracing.Trace {
	return tracing.Select("kvtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
