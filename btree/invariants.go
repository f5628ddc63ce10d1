package btree

import "fmt"

// Check validates structural tree invariants:
//
//   - keys are strictly increasing within every node and across the tree,
//   - internal nodes have exactly one child more than keys,
//   - non-root nodes hold between ⌈order/2⌉-1 and order-1 keys,
//   - all leaves are at depth Height(),
//   - parent references agree with child links,
//   - Len() equals the number of reachable keys.
//
// Violations are reported as errors wrapping ErrInvariant. Check is meant to
// be used in tests and for debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and size=0, has %d and %d",
				ErrInvariant, t.height, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if t.root.size() == 0 {
		return fmt.Errorf("%w: root has no keys", ErrInvariant)
	}
	count, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable keys, Len()=%d)", ErrInvariant, count, t.size)
	}
	var prev K
	first, ordered := true, true
	t.ascend(func(key K, _ V) bool {
		if !first && !(prev < key) {
			ordered = false
			return false
		}
		prev, first = key, false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: keys not strictly increasing in order at key %v", ErrInvariant, prev)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n *node[K, V], isRoot bool) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if len(n.keys) != len(n.values) {
		return 0, 0, fmt.Errorf("%w: %d keys but %d values", ErrInvariant, len(n.keys), len(n.values))
	}
	if n.size() > t.cfg.maxKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, maximum is %d", ErrInvariant, n.size(), t.cfg.maxKeys())
	}
	if !isRoot && n.size() < t.cfg.minKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, minimum is %d", ErrInvariant, n.size(), t.cfg.minKeys())
	}
	for i := 1; i < len(n.keys); i++ {
		if !(n.keys[i-1] < n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: node keys not strictly increasing at %d", ErrInvariant, i)
		}
	}
	if n.isLeaf() {
		return n.size(), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d keys but %d children",
			ErrInvariant, len(n.keys), len(n.children))
	}
	keys = n.size()
	var childHeight int
	for i, child := range n.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %d has inconsistent parent reference", ErrInvariant, i)
		}
		cKeys, cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		if i > 0 && !(n.keys[i-1] < child.keys[0]) || i < len(n.keys) && !(child.keys[child.size()-1] < n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: child %d not bounded by separators", ErrInvariant, i)
		}
		keys += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	return keys, childHeight + 1, nil
}
