package iterator

import (
	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

func newCompleteTree_2Tall() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int]{
				Key: 7,
			},
		},
	}
}

func newDogleg() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int]{
				Left: &tree.Node[int]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int]{
			Key: 9,
		},
	}
}

// collect drains i into a slice.
func collect[T constraints.Ordered](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
