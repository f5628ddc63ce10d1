package btree

import (
	"cmp"
)

// Tree is an in-memory ordered key/value index.
//
// K is the key type and may be any totally ordered type, V is the value type.
// A zero Tree is not usable; create trees with New or NewWithConfig.
type Tree[K cmp.Ordered, V any] struct {
	cfg    Config
	root   *node[K, V]
	size   int // number of key/value pairs
	height int // 0 means empty tree
}

// New creates an empty tree of a given order. order is the maximum number of
// children of a node and must be at least 3, otherwise New returns an error
// wrapping ErrInvalidConfig.
func New[K cmp.Ordered, V any](order int) (*Tree[K, V], error) {
	return NewWithConfig[K, V](Config{Order: order})
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[K cmp.Ordered, V any](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Order returns the maximum number of children of a node.
func (t *Tree[K, V]) Order() int {
	return t.cfg.Order
}

// Len returns the number of key/value pairs in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Search returns the value stored for key. The boolean result is false if
// key is not present.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n, i, found := t.locate(key)
	if !found {
		return zero, false
	}
	return n.values[i], true
}
