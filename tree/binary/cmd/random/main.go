package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.lepak.sg/bst/tree/binary"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of nodes in the tree (negative means 0)")
	reverse = flag.Bool("r", false, "also print the keys in descending order")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	run(os.Stdout, *num, *seed, *reverse)
}

func run(w io.Writer, num int, seed int64, reverse bool) {
	if num < 0 {
		num = 0
	}

	tr := binary.BuildRandom(num, seed)

	preorder := make([]int, 0, num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	fmt.Fprintln(w, "seed:", seed)
	fmt.Fprintln(w, "preorder:", preorder)
	fmt.Fprintln(w, "inorder:", inorder)
	fmt.Fprintln(w, "display:", tr)

	if reverse {
		descending := make([]int, 0, num)
		i := tr.ReverseIterator()
		for i.Next() {
			descending = append(descending, i.Item())
		}
		fmt.Fprintln(w, "descending:", descending)
	}

	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.Diagram())

	fmt.Fprintln(w, "height:", tr.Height(), "nodes:", tr.Len())
}
