// Command demo builds a small tree, clones it, grows the original
// and prints both trees followed by the original's keys, one per line.
package main

import (
	"fmt"
	"io"
	"os"

	"go.lepak.sg/bst/tree/binary"
)

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	// build a tree containing 3, 5
	sample := binary.New(5)
	sample.Insert(3)

	sample2 := sample.Clone()

	// the clone must not see this
	sample.Insert(7)

	fmt.Fprintln(w, sample)
	fmt.Fprintln(w, sample2)

	i := sample.Iterator()
	for i.Next() {
		fmt.Fprintln(w, i.Item())
	}
}
