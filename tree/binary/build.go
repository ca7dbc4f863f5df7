package binary

import (
	"math/rand"
)

// BuildRandom builds a binary tree with num nodes by repeated Insert.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// If num is not positive, the returned tree is empty.
func BuildRandom(num int, seed int64) *Tree[int] {
	tr := &Tree[int]{}
	if num <= 0 {
		return tr
	}

	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	for _, k := range keys {
		tr.Insert(k)
	}

	return tr
}
