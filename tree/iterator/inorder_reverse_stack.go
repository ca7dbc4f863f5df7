package iterator

import (
	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverseStack[int])(nil)

// InOrderReverseStack is an iterator object over a binary tree.
// Iteration starts from the *largest* key and runs to
// the *smallest* key.
// The usage should be pretty familiar:
//	i := someBinaryTree.ReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverseStack[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// NewInOrderReverseStack returns a new reverse iterator over the tree
// rooted at root. heightHint works like it does for NewInOrderStack.
func NewInOrderReverseStack[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrderReverseStack[T] {
	i := &InOrderReverseStack[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.fillRightmost(root)
	return i
}

// Basically InOrderStack but left and right are flipped.
func (i *InOrderReverseStack[T]) fillRightmost(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Next advances to the next key in descending order and returns
// true if there is one.
func (i *InOrderReverseStack[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]

	i.fillRightmost(pop.Left)
	i.at = pop

	return true
}

// Item returns a copy of the current key.
func (i *InOrderReverseStack[T]) Item() T {
	return i.at.Key
}
