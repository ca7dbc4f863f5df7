// Package iterator provides tree iterators for use
// by tree implementations.
//
// The iterators here walk a tree with an explicit stack of
// node pointers instead of recursion or parent pointers.
// The stack only ever holds the path from the root to the
// current node, minus the nodes already yielded, so it is
// bounded by the height of the tree, not its size.
package iterator

import (
	"go.lepak.sg/bst/chops"
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it will keep returning
// false; an iterator is single-pass and cannot be reset.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
//
// Iterators read the tree they were created from without
// copying it. The tree must not be inserted into while any
// iterator over it is still in use.
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
