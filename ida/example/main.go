package main

import (
	"fmt"

	"github.com/aglyzov/go-ida/ida"
)

func main() {
	alloc := ida.New()

	id1, _ := alloc.Alloc()
	id2, _ := alloc.Alloc()
	fmt.Println("allocated:", id1, id2) // 0 1

	alloc.Free(id1)

	id3, _ := alloc.Alloc()
	fmt.Println("reused:", id3) // 0 again

	// push the tree up a few levels, then release the middle: memory
	// follows the live IDs, not the numeric span
	var last uint64
	for i := 0; i < 64*64*2; i++ {
		last, _ = alloc.Alloc()
	}
	for id := uint64(2); id < last; id++ {
		alloc.Free(id)
	}

	fmt.Println("sparse:", alloc) // a handful of nodes for IDs 0, 1 and 8193
	fmt.Println("has 1:", alloc.Has(1), " has 2:", alloc.Has(2), " has", last, ":", alloc.Has(last))
}
