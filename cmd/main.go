package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gaissmai/burt"
)

var (
	prng = rand.New(rand.NewPCG(42, 42))
	tree = &burt.Tree{}
)

func main() {
	start := time.Now()

	for range 10_000_000 {
		tree.Insert(uint16(prng.UintN(1 << 16)))
	}

	fmt.Fprintf(os.Stderr, "inserted %d values in %v\n", tree.Size(), time.Since(start))

	start = time.Now()

	var n int
	for range tree.All() {
		n++
	}

	fmt.Fprintf(os.Stderr, "enumerated %d values in %v\n", n, time.Since(start))
}
