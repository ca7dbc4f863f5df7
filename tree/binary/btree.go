package binary

import (
	"fmt"
	"io"
	"strings"

	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting).
//
// Use New to create a tree holding one key. The zero Tree may also
// be used immediately and is empty until the first Insert.
// Tree should not be passed around as a value (use *Tree).
//
// This tree implementation does not support removal. It is also not
// self-balancing: inserting keys in sorted order degrades it to a list.
//
// Invariants:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    will be less than N.Key
//  - At any node N in the tree, all node keys in the subtree rooted at N.Right
//    will be greater than N.Key
//  - For every possible key, there will be at most one node with that key
//    in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate keys or children!
	root  *tree.Node[T]
	count int
	// depth of the deepest node, kept up to date by Insert
	height int
}

// New returns a tree holding only k.
func New[T constraints.Ordered](k T) *Tree[T] {
	return &Tree[T]{
		root:   tree.NodeOf(k),
		count:  1,
		height: 1,
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the number of nodes on the longest root-to-leaf path.
// The empty tree has height 0.
func (t *Tree[T]) Height() int {
	return t.height
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Without parent pointers, remember the last node where
	// the search turned right: it is the closest smaller ancestor.
	var below *tree.Node[T]

	n := t.root
	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n, below = n.Right, n
		case tree.Equal:
			// the max in the left subtree, if any, beats every ancestor
			if n.Left != nil {
				below = n.Left
				for below.Right != nil {
					below = below.Right
				}
			}
			n = nil
		default:
			panic("unreachable")
		}
	}

	if below == nil {
		return
	}

	return below.Key, true
}

// Insert inserts k into the binary tree.
// If k is already in the tree, the tree is unchanged and Insert
// returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = tree.NodeOf(k)
		t.count = 1
		t.height = 1
		return true
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order
	depth := 1

	for n != nil {
		depth++
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = tree.NodeOf(k)
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = tree.NodeOf(k)
	default:
		panic("unreachable")
	}

	t.count++
	if depth > t.height {
		t.height = depth
	}
	return true
}

// Clone returns a deep copy of the tree. Inserting into either
// tree afterwards never affects the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:   t.root.Clone(),
		count:  t.count,
		height: t.height,
	}
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}
	visitInOrder(t.root, f)
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrderStack which is not recursive
	if n.Left != nil {
		if !visitInOrder(n.Left, f) {
			return false
		}
	}

	if !f(n.Key) {
		return false
	}

	if n.Right != nil {
		if !visitInOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// PreOrder applies f to each key in the tree in pre-order
// (node, then left subtree, then right subtree).
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}
	visitPreOrder(t.root, f)
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if !f(n.Key) {
		return false
	}

	if n.Left != nil {
		if !visitPreOrder(n.Left, f) {
			return false
		}
	}

	if n.Right != nil {
		if !visitPreOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// Iterator returns an iterator object that yields
// keys from the tree in ascending order.
// The tree must not be inserted into while the iterator is in use.
func (t *Tree[T]) Iterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.root, t.Height())
}

// ReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
// The tree must not be inserted into while the iterator is in use.
func (t *Tree[T]) ReverseIterator() *iterator.InOrderReverseStack[T] {
	return iterator.NewInOrderReverseStack(t.root, t.Height())
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.Iterator())
}

// String returns the keys of the tree in ascending order,
// separated by single spaces. A tree holding 3, 5 and 7
// is rendered as "3 5 7". The empty tree renders as "".
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root != nil {
		writeInOrder(&sb, t.root)
	}

	return sb.String()
}

func writeInOrder[T constraints.Ordered](w io.Writer, n *tree.Node[T]) {
	if n.Left != nil {
		writeInOrder(w, n.Left)
		io.WriteString(w, " ")
	}
	fmt.Fprint(w, n.Key)
	if n.Right != nil {
		io.WriteString(w, " ")
		writeInOrder(w, n.Right)
	}
}

// Diagram returns a drawing of the tree's structure.
// A complete binary tree with height 3 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) Diagram() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
