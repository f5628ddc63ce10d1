package btree

// Remove deletes key from the tree and returns the value that was stored
// under it. If key is not present, found is false and the tree is unchanged.
func (t *Tree[K, V]) Remove(key K) (removed V, found bool) {
	n, i, found := t.locate(key)
	if !found {
		return removed, false
	}
	removed = n.values[i]
	if !n.isLeaf() {
		// replace key by its in-order successor, then delete the successor
		succ := n.children[i+1]
		for !succ.isLeaf() {
			succ = succ.children[0]
		}
		n.keys[i], n.values[i] = succ.keys[0], succ.values[0]
		n, i = succ, 0
	}
	n.removeEntry(i)
	t.size--
	if n.size() < t.cfg.minKeys() {
		t.repairUnderflow(n)
	}
	return removed, true
}

// repairUnderflow restores the lower occupancy bound for n and its ancestors.
//
// A non-root node first tries to borrow an entry from its left sibling, then
// from its right sibling, through the separator in the parent. If neither
// sibling can spare an entry, n is merged with a sibling (left one preferred)
// and the separator, which removes an entry from the parent. The root is
// exempt from the lower bound; an empty root collapses into its only child.
func (t *Tree[K, V]) repairUnderflow(n *node[K, V]) {
	for n.size() < t.cfg.minKeys() {
		parent := n.parent
		if parent == nil {
			t.collapseRoot(n)
			return
		}
		i := parent.childIndex(n)
		var left, right *node[K, V]
		if i > 0 {
			left = parent.children[i-1]
		}
		if i < parent.size() {
			right = parent.children[i+1]
		}
		switch {
		case left != nil && left.size() > t.cfg.minKeys():
			t.borrowFromLeft(n, left, parent, i)
			return
		case right != nil && right.size() > t.cfg.minKeys():
			t.borrowFromRight(n, right, parent, i)
			return
		case left != nil:
			t.merge(left, n, parent, i-1)
		default:
			assert(right != nil, "repairUnderflow: non-root node without siblings")
			t.merge(n, right, parent, i)
		}
		n = parent
	}
}

// collapseRoot drops an empty root. A leaf root leaves an empty tree, an
// internal root is replaced by its single child.
func (t *Tree[K, V]) collapseRoot(root *node[K, V]) {
	assert(root == t.root, "collapseRoot called for non-root node")
	if root.size() > 0 {
		return
	}
	if root.isLeaf() {
		t.root = nil
		t.height = 0
		tracer().Debugf("btree: last key removed, tree is empty")
		return
	}
	assert(len(root.children) == 1, "collapseRoot: empty internal root must have one child")
	child := root.children[0]
	root.children = nil
	child.parent = nil
	t.root = child
	t.height--
	tracer().Debugf("btree: collapsed root, height now %d", t.height)
}

// borrowFromLeft rotates the last entry of left up into the separator of
// parent at position i-1, and the old separator down as the first entry of n.
func (t *Tree[K, V]) borrowFromLeft(n, left, parent *node[K, V], i int) {
	last := left.size() - 1
	key, value := left.removeEntry(last)
	n.insertEntry(0, parent.keys[i-1], parent.values[i-1])
	parent.keys[i-1], parent.values[i-1] = key, value
	if !left.isLeaf() {
		n.insertChild(0, left.removeChild(last+1))
	}
	tracer().Debugf("btree: borrowed key %v from left sibling", key)
}

// borrowFromRight rotates the first entry of right up into the separator of
// parent at position i, and the old separator down as the last entry of n.
func (t *Tree[K, V]) borrowFromRight(n, right, parent *node[K, V], i int) {
	key, value := right.removeEntry(0)
	n.insertEntry(n.size(), parent.keys[i], parent.values[i])
	parent.keys[i], parent.values[i] = key, value
	if !right.isLeaf() {
		n.insertChild(len(n.children), right.removeChild(0))
	}
	tracer().Debugf("btree: borrowed key %v from right sibling", key)
}

// merge joins right into left together with their separator, the entry of
// parent at position sep. right is unlinked from parent and dropped.
func (t *Tree[K, V]) merge(left, right, parent *node[K, V], sep int) {
	assert(parent.children[sep] == left && parent.children[sep+1] == right,
		"merge: nodes are not adjacent children of parent")
	key, value := parent.removeEntry(sep)
	parent.removeChild(sep + 1)
	left.keys = append(append(left.keys, key), right.keys...)
	left.values = append(append(left.values, value), right.values...)
	if !left.isLeaf() {
		left.children = append(left.children, right.children...)
		left.adopt(right.children...)
	}
	assert(left.size() <= t.cfg.maxKeys(), "merge: merged node overflows")
	right.keys, right.values, right.children, right.parent = nil, nil, nil, nil
	tracer().Debugf("btree: merged siblings around separator %v", key)
}
