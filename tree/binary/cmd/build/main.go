// Command build reads whitespace separated integers from stdin,
// inserts them into a tree in the order given and prints the result.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/bst/must"
	"go.lepak.sg/bst/tree/binary"
)

func main() {
	fmt.Print("keys: ")
	tr, dups := build(readInts(os.Stdin))

	if len(dups) > 0 {
		fmt.Println("duplicates ignored:", dups)
	}

	fmt.Println("in-order:", tr)
	fmt.Println("tree:")
	fmt.Print(tr.Diagram())

	clone := tr.Clone()
	fmt.Println("clone:", clone)
}

// build inserts keys into a new tree and returns the keys
// that were already present when their turn came.
func build(keys []int) (*binary.Tree[int], []int) {
	tr := &binary.Tree[int]{}
	var dups []int

	for _, k := range keys {
		if !tr.Insert(k) {
			dups = append(dups, k)
		}
	}

	return tr, dups
}

func readInts(r io.Reader) []int {
	raw, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		panic(err)
	}

	raws := strings.Fields(raw)

	out := make([]int, len(raws))

	for i, rawNum := range raws {
		out[i] = must.Must2(strconv.Atoi(rawNum))
	}
	return out
}
