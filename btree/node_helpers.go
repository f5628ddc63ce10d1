package btree

import (
	"cmp"
	"slices"
)

// makeLeaf creates a leaf from parallel key and value slices.
// The slices are owned by the new leaf afterwards.
func makeLeaf[K cmp.Ordered, V any](keys []K, values []V) *node[K, V] {
	assert(len(keys) == len(values), "makeLeaf called with unbalanced keys and values")
	return &node[K, V]{keys: keys, values: values}
}

// makeInternal creates an internal node and adopts its children.
func makeInternal[K cmp.Ordered, V any](keys []K, values []V, children []*node[K, V]) *node[K, V] {
	assert(len(keys) == len(values), "makeInternal called with unbalanced keys and values")
	assert(len(children) == len(keys)+1, "makeInternal requires len(children) == len(keys)+1")
	n := &node[K, V]{keys: keys, values: values, children: children}
	n.adopt(children...)
	return n
}

// adopt re-targets the parent reference of children to n.
func (n *node[K, V]) adopt(children ...*node[K, V]) {
	for _, c := range children {
		assert(c != nil, "adopt called with nil child")
		c.parent = n
	}
}

// insertEntry inserts a key/value pair at position i without touching children.
func (n *node[K, V]) insertEntry(i int, key K, value V) {
	n.keys = insertAt(n.keys, i, key)
	n.values = insertAt(n.values, i, value)
}

// removeEntry removes the key/value pair at position i without touching children.
func (n *node[K, V]) removeEntry(i int) (K, V) {
	var key K
	var value V
	n.keys, key = removeAt(n.keys, i)
	n.values, value = removeAt(n.values, i)
	return key, value
}

// insertChild links c as child number i of internal node n.
func (n *node[K, V]) insertChild(i int, c *node[K, V]) {
	assert(!n.isLeaf(), "insertChild called on leaf")
	n.children = insertAt(n.children, i, c)
	c.parent = n
}

// removeChild unlinks child number i of internal node n.
func (n *node[K, V]) removeChild(i int) *node[K, V] {
	assert(!n.isLeaf(), "removeChild called on leaf")
	var c *node[K, V]
	n.children, c = removeAt(n.children, i)
	return c
}

// childIndex returns the position of c in n.children.
func (n *node[K, V]) childIndex(c *node[K, V]) int {
	i := slices.Index(n.children, c)
	assert(i >= 0, "childIndex: node is not a child of its parent")
	return i
}

// splitAt cuts n at key position mid. n keeps the entries [0,mid) and the
// children [0,mid]; the returned right sibling gets entries (mid,len) and
// children [mid+1,len]. The entry at mid is returned for promotion.
func (n *node[K, V]) splitAt(mid int) (K, V, *node[K, V]) {
	assert(mid > 0 && mid < len(n.keys)-1, "splitAt position out of range")
	key, value := n.keys[mid], n.values[mid]
	right := &node[K, V]{
		keys:   slices.Clone(n.keys[mid+1:]),
		values: slices.Clone(n.values[mid+1:]),
	}
	if !n.isLeaf() {
		right.children = slices.Clone(n.children[mid+1:])
		right.adopt(right.children...)
		n.children = truncate(n.children, mid+1)
	}
	n.keys = truncate(n.keys, mid)
	n.values = truncate(n.values, mid)
	return key, value, right
}

// --- Slice helpers ---------------------------------------------------------

// insertAt inserts values into a slice at idx.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	return slices.Insert(src, idx, values...)
}

// removeAt removes the element at idx and returns the shortened slice
// together with the removed element.
func removeAt[T any](src []T, idx int) ([]T, T) {
	assert(idx >= 0 && idx < len(src), "removeAt index out of range")
	x := src[idx]
	return slices.Delete(src, idx, idx+1), x
}

// truncate shortens src to length l, zeroing the cut-off tail so that it does
// not keep references alive.
func truncate[T any](src []T, l int) []T {
	assert(l >= 0 && l <= len(src), "truncate length out of range")
	clear(src[l:])
	return src[:l]
}
