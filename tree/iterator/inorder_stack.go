package iterator

import (
	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderStack[int])(nil)

// InOrderStack is an in-order iterator object over a binary tree.
// It yields keys in ascending order. It does not rely on parent
// pointers, instead keeping an internal stack of the nodes that
// still owe a visit. The top of the stack is always the next node
// to yield.
type InOrderStack[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// Everything up to (1) can be run eagerly, all the way down
// to the leftmost child node. This adds visit stack frames
// and we replicate them in i.stack (fillLeftmost).
// Popping a node off i.stack is equivalent to f(n).
// We then resume from (2) by pushing the leftmost path of
// the popped node's right child.

// NewInOrderStack creates a new in-order iterator positioned
// before the smallest key of the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// A nil root gives an iterator that is exhausted from the start.
func NewInOrderStack[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrderStack[T] {
	i := &InOrderStack[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.fillLeftmost(root)
	return i
}

// fillLeftmost pushes n and its chain of left children.
func (i *InOrderStack[T]) fillLeftmost(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next advances to the next key in ascending order and returns
// true if there is one.
func (i *InOrderStack[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		// exhausted for good: nothing can push onto an empty stack again
		i.at = nil
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]

	i.fillLeftmost(pop.Right)
	i.at = pop

	return true
}

// Item returns a copy of the current key.
func (i *InOrderStack[T]) Item() T {
	return i.at.Key
}

// Remaining returns the number of nodes on the stack, that is,
// the ancestors of the next key that have not been yielded yet
// (including the next key itself).
// Remaining is 0 exactly when the next call to Next returns false.
func (i *InOrderStack[T]) Remaining() int {
	if i == nil {
		return 0
	}
	return len(i.stack)
}
