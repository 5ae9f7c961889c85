// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package burt

import (
	"iter"
	"sync"

	"github.com/gaissmai/burt/internal/stride"
)

// Tree is an ordered multiset of uint16 values.
// The zero value is ready to use.
type Tree struct {
	root any // *leafNode, *fanoutNode or *bucketsNode

	// zero is the empty-slot sentinel inside leaf nodes and can't be
	// stored there, occurrences of 0 are counted at the root instead
	zeros uint64

	size int

	// simple API, no constructor needed
	initOnce sync.Once
}

// init once, so no constructor is needed.
// The root starts as an empty leaf node.
func (t *Tree) init() {
	t.initOnce.Do(func() {
		t.root = new(leafNode)
	})
}

// Insert adds v to the multiset, duplicates accumulate.
//
// Insert never fails for any valid value. It panics if a single value
// has been inserted more than 65535 times, see the counterLimit const.
func (t *Tree) Insert(v uint16) {
	t.init()

	if v == 0 {
		t.zeros++
		t.size++
		return
	}

	// descend the fanout spine down to the node owning v
	depth := 0
	var parent *fanoutNode
	var addr uint8

	n := t.root
	for {
		switch kid := n.(type) {
		case *fanoutNode:
			parent, addr = kid, stride.Index(v, depth)
			n = kid.children[addr]
			depth++

		case *bucketsNode:
			bucket := &kid.counts[stride.Index(v, maxTreeDepth)]
			if *bucket == counterLimit {
				panic("counter limit reached, insert would make the count ambiguous")
			}
			*bucket++
			t.size++
			return

		case *leafNode:
			full := kid.values.Insert(v)
			t.size++

			if full {
				// burst the leaf and hang the new fanout node into the
				// slot the leaf came from
				if parent == nil {
					t.root = burst(kid, depth)
				} else {
					parent.children[addr] = burst(kid, depth)
				}
			}
			return

		default:
			panic("logic error, wrong node type")
		}
	}
}

// Size returns the number of stored values, counting multiplicity.
func (t *Tree) Size() int {
	return t.size
}

// All returns an iterator over every stored value in ascending order,
// duplicates are yielded once per occurrence.
//
// The iteration has no side effect on the tree and restarts from scratch
// on every range statement.
func (t *Tree) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		if t == nil || t.root == nil {
			return
		}

		for range t.zeros {
			if !yield(0) {
				return
			}
		}

		allRec(t.root, 0, 0, yield)
	}
}

// Reset returns the tree to its initial state, an empty root leaf and a
// cleared zero counter.
//
// Nodes are owned strictly top-down and hold no parent back references,
// dropping the root releases the whole subtree to the garbage collector.
func (t *Tree) Reset() {
	t.init()

	t.root = new(leafNode)
	t.zeros = 0
	t.size = 0
}
