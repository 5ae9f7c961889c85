// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package burt

import (
	"github.com/gaissmai/burt/internal/sorted"
	"github.com/gaissmai/burt/internal/stride"
)

const (
	maxTreeDepth = stride.MaxDepth // level of the counter buckets
	fanoutWidth  = stride.Width    // children per fanout node

	// counterLimit bounds a single terminal bucket. The storage is 64 bit
	// wide, but counts beyond 16 bit are out of contract for consumers
	// replaying the textual dump, so exceeding the limit is a fatal fault.
	counterLimit = 1<<16 - 1
)

// A node slot holds exactly one of three shapes:
//
//   - *leafNode:    a sorted run of raw values, the shape every node starts as
//   - *fanoutNode:  8 owned child slots, the shape a full leaf bursts into
//   - *bucketsNode: occurrence counters, always and only at maxTreeDepth
//
// The shapes are discriminated by type switch, a slot holding anything
// else is a violated invariant and panics.

// leafNode holds up to 32 raw values in sort order.
type leafNode struct {
	values sorted.Array32
}

// fanoutNode owns 8 children, indexed by the depth's bit slice of the
// value. All 8 slots are populated atomically at burst time, never lazily,
// a fanout slot is never nil.
type fanoutNode struct {
	children [fanoutWidth]any
}

// bucketsNode accumulates occurrence counts at the maximum depth. Only
// one value bit is left undecided down here, so just the buckets at index
// 0 and 1 are ever addressed; the remaining slots keep the node at one
// cache line and stay reserved for a re-partitioned tree.
type bucketsNode struct {
	counts [fanoutWidth]uint64
}

// burst transforms a full leaf into a fanout node, redistributing every
// value one level deeper. The 8 children are allocated as a single slab,
// children of one burst stay adjacent in memory.
//
// If all 32 values route into the same child, that child fills up during
// redistribution and is burst again one level deeper before returning.
// This is the only source of recursion and it is bounded by maxTreeDepth.
func burst(leaf *leafNode, depth int) *fanoutNode {
	fn := new(fanoutNode)

	if depth+1 == maxTreeDepth {
		// children are counter buckets
		slab := new([fanoutWidth]bucketsNode)
		for _, v := range leaf.values.Values() {
			slab[stride.Index(v, depth)].counts[stride.Index(v, maxTreeDepth)]++
		}
		for i := range fn.children {
			fn.children[i] = &slab[i]
		}
		return fn
	}

	// children are leaves again
	slab := new([fanoutWidth]leafNode)

	reBurst := -1
	for _, v := range leaf.values.Values() {
		idx := stride.Index(v, depth)
		if slab[idx].values.Insert(v) {
			// only possible with the last value, and only if all 32
			// landed in the same child
			reBurst = int(idx)
		}
	}

	for i := range fn.children {
		fn.children[i] = &slab[i]
	}

	if reBurst >= 0 {
		fn.children[reBurst] = burst(&slab[reBurst], depth+1)
	}

	return fn
}

// allRec, rec-descent in slot order, yields every value of the subtree
// in ascending order, duplicates once per occurrence.
//
// Bucket nodes don't store their values, the prefix accumulates the bits
// already decided by the path taken so far.
func allRec(n any, prefix uint16, depth int, yield func(uint16) bool) bool {
	switch n := n.(type) {
	case *leafNode:
		// values are stored whole, no prefix needed
		for _, v := range n.values.Values() {
			if !yield(v) {
				return false
			}
		}

	case *fanoutNode:
		for i, kid := range n.children {
			if !allRec(kid, prefix|stride.IdxToBits(uint8(i), depth), depth+1, yield) {
				return false
			}
		}

	case *bucketsNode:
		for bit := range uint16(2) {
			for range n.counts[bit] {
				if !yield(prefix | bit) {
					return false
				}
			}
		}

	default:
		panic("logic error, wrong node type")
	}

	return true
}
