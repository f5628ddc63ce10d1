package btree

// Insert stores value under key.
//
// If key is already present, its value is overwritten in place and the
// previous value is returned with replaced set to true; the number of entries
// does not change in this case. Insert never fails.
func (t *Tree[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	n, i, found := t.locate(key)
	if found {
		previous = n.values[i]
		n.values[i] = value
		return previous, true
	}
	t.size++
	if n == nil {
		assert(t.root == nil, "Insert: search on non-empty tree touched no node")
		t.root = makeLeaf([]K{key}, []V{value})
		t.height = 1
		tracer().Debugf("btree: created leaf root for key %v", key)
		return previous, false
	}
	assert(n.isLeaf(), "Insert: descent did not end in a leaf")
	n.insertEntry(i, key, value)
	if n.size() > t.cfg.maxKeys() {
		t.splitOverflow(n)
	}
	return previous, false
}

// splitOverflow repairs a node holding one key more than allowed.
//
// The node is split at order/2; the middle entry moves up into the parent,
// which may overflow in turn. Splitting the root grows the tree by one level.
func (t *Tree[K, V]) splitOverflow(n *node[K, V]) {
	mid := t.cfg.Order / 2
	for n.size() > t.cfg.maxKeys() {
		assert(n.size() == t.cfg.Order, "splitOverflow: node exceeds overflow capacity")
		parent := n.parent
		key, value, right := n.splitAt(mid)
		tracer().Debugf("btree: split node, promoting key %v", key)
		if parent == nil {
			t.root = makeInternal([]K{key}, []V{value}, []*node[K, V]{n, right})
			t.height++
			return
		}
		i := parent.childIndex(n)
		parent.insertEntry(i, key, value)
		parent.insertChild(i+1, right)
		n = parent
	}
}
