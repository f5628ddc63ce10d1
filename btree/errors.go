package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration, e.g. an order
	// less than 3. A tree with an invalid configuration cannot be created.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvariant signals a violated structural invariant, as reported by Check.
	ErrInvariant = errors.New("btree: invariant violated")
)
