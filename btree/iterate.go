package btree

// ascend walks all entries in key order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) ascend(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.ascendNode(t.root, fn)
}

func (t *Tree[K, V]) ascendNode(n *node[K, V], fn func(key K, value V) bool) bool {
	assert(n != nil, "ascendNode called with nil node")
	for i := range n.keys {
		if !n.isLeaf() && !t.ascendNode(n.children[i], fn) {
			return false
		}
		if !fn(n.keys[i], n.values[i]) {
			return false
		}
	}
	if !n.isLeaf() {
		return t.ascendNode(n.children[len(n.keys)], fn)
	}
	return true
}

// levelOrder visits all nodes breadth-first, starting at the root (depth 0).
func (t *Tree[K, V]) levelOrder(fn func(n *node[K, V], depth int)) {
	if t == nil || t.root == nil {
		return
	}
	level := []*node[K, V]{t.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K, V]
		for _, n := range level {
			fn(n, depth)
			next = append(next, n.children...)
		}
		level = next
	}
}
