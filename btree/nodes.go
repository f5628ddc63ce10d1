package btree

import "cmp"

// node is the storage unit of a tree.
//
// keys is strictly increasing and values[i] belongs to keys[i]. A leaf has
// no children (children == nil); an internal node has exactly len(keys)+1
// non-nil children, where children[i] holds the keys between keys[i-1] and
// keys[i].
//
// parent is a back reference only; children are owned by their parent node.
type node[K cmp.Ordered, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
	parent   *node[K, V]
}

func (n *node[K, V]) isLeaf() bool { return n.children == nil }

func (n *node[K, V]) size() int { return len(n.keys) }
