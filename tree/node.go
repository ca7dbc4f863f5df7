// Package tree holds the node type and key ordering shared by
// the tree implementations and iterators in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single node of a binary tree.
// Left and Right are owned by this node: a node is never the child of
// more than one parent, so there are no parent pointers to maintain.
// A nil child is an absent subtree.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

// NodeOf returns a new leaf holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Clone returns a deep copy of the subtree rooted at n.
// Keys are copied by value and every node is freshly allocated,
// so nothing is shared between n and the copy.
// Clone of a nil node is nil.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}

	return &Node[T]{
		Key:   n.Key,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// Height returns the number of nodes on the longest path from n
// down to a leaf. A nil node has height 0, a leaf has height 1.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
