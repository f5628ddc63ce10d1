package btree

import "slices"

// locate searches for key, starting at the root.
//
// If key is present, locate returns the node holding it and the position of
// key within that node. Otherwise found is false and n is the last node
// visited on the descent, which is always a leaf (or nil for an empty tree),
// and i is the position at which key would have to be inserted into n.
func (t *Tree[K, V]) locate(key K) (n *node[K, V], i int, found bool) {
	for cur := t.root; cur != nil; {
		i, found = slices.BinarySearch(cur.keys, key)
		if found {
			return cur, i, true
		}
		n = cur
		if cur.isLeaf() {
			break
		}
		cur = cur.children[i]
	}
	return n, i, false
}
