// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package burt

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/burt/internal/stride"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree structure and all the nodes to w.
func (t *Tree) dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}

	fmt.Fprintf(w, "### size(%d), zeros(%d)\n", t.size, t.zeros)
	dumpRec(w, t.root, 0, 0)
}

// dumpRec, rec-descent the trie.
func dumpRec(w io.Writer, n any, prefix uint16, depth int) {
	indent := strings.Repeat(".", depth)

	switch n := n.(type) {
	case *leafNode:
		fmt.Fprintf(w, "%s[LEAF] depth: %d values(#%d): %v\n",
			indent, depth, n.values.Len(), n.values.Values())

	case *fanoutNode:
		fmt.Fprintf(w, "%s[FANOUT] depth: %d prefix: %#016b\n", indent, depth, prefix)

		for i, kid := range n.children {
			dumpRec(w, kid, prefix|stride.IdxToBits(uint8(i), depth), depth+1)
		}

	case *bucketsNode:
		fmt.Fprintf(w, "%s[COUNT] depth: %d counts: [%d: %d, %d: %d]\n",
			indent, depth, prefix, n.counts[0], prefix|1, n.counts[1])

	default:
		panic("logic error, wrong node type")
	}
}
