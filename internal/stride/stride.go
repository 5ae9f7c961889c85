// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package stride summarizes the functions and inverse functions
// for mapping between a 16-bit value and its per-depth slot index.
//
// Depths 0..4 each consume a disjoint, contiguous 3-bit slice of the
// value, most significant bits first; the maximum depth consumes the one
// remaining bit. The concatenation of all slices, root to bucket,
// reconstructs the value exactly.
package stride

const (
	// Len is the number of bits consumed per level below the last.
	Len = 3

	// MaxDepth is the depth of the counter buckets, MaxDepth*Len+1 == 16.
	MaxDepth = 5

	// Width is the fanout of a burst node.
	Width = 1 << Len
)

// shift amount per depth.
var shift = [MaxDepth + 1]uint8{13, 10, 7, 4, 1, 0}

// value mask per depth.
var mask = [MaxDepth + 1]uint16{
	0b1110_0000_0000_0000,
	0b0001_1100_0000_0000,
	0b0000_0011_1000_0000,
	0b0000_0000_0111_0000,
	0b0000_0000_0000_1110,
	0b0000_0000_0000_0001,
}

// Index returns the slot index of v at depth. The range is [0..7] for
// depths below [MaxDepth] and [0..1] at [MaxDepth].
//
// Index panics if depth is out of range.
func Index(v uint16, depth int) uint8 {
	return uint8((v & mask[depth]) >> shift[depth])
}

// IdxToBits is the inverse of [Index], the contribution of slot idx at
// depth to the value owned by that slot's subtree.
func IdxToBits(idx uint8, depth int) uint16 {
	return uint16(idx) << shift[depth]
}
