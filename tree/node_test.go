package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int] {
	return &Node[int]{
		Left: &Node[int]{
			Left: &Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int]{
			Left: &Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int]{
				Key: 7,
			},
		},
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, 1.0))
}

func TestNode_Clone(t *testing.T) {
	n := newCompleteTree_2Tall()

	c := n.Clone()

	assert.Equal(t, n, c)
	assert.NotSame(t, n, c)
	assert.NotSame(t, n.Left, c.Left)
	assert.NotSame(t, n.Right.Right, c.Right.Right)

	// attach to the copy only
	c.Left.Left.Left = NodeOf(0)
	assert.Nil(t, n.Left.Left.Left)

	n.Right.Right.Right = NodeOf(8)
	assert.Nil(t, c.Right.Right.Right)
}

func TestNode_CloneNil(t *testing.T) {
	var n *Node[int]
	assert.Nil(t, n.Clone())
}

func TestNode_Height(t *testing.T) {
	var n *Node[int]
	assert.Equal(t, 0, n.Height())
	assert.Equal(t, 1, NodeOf(1).Height())
	assert.Equal(t, 3, newCompleteTree_2Tall().Height())

	dogleg := &Node[int]{
		Key: 8,
		Left: &Node[int]{
			Key: 5,
			Right: &Node[int]{
				Key:  7,
				Left: NodeOf(6),
			},
		},
	}
	assert.Equal(t, 4, dogleg.Height())
}
