// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package burt provides a BUrsting Radix Trie (BURT), a compact and
// cache-conscious multiset container for unsigned 16-bit integers.
//
// Values are inserted one at a time, duplicates accumulate, and the whole
// multiset is enumerated in ascending order. Every node starts life as a
// small sorted array of raw values; once the array is full it bursts into
// an 8-way fanout node and its contents move one level deeper. A node at
// the maximum depth holds per-value occurrence counters instead of raw
// values.
//
// The child index below a fanout node is a 3-bit slice of the value,
// selected by the depth, most significant bits first; the single bit left
// over selects the counter bucket at the maximum depth:
//
//	depth 0  0b1110_0000_0000_0000
//	depth 1  0b0001_1100_0000_0000
//	depth 2  0b0000_0011_1000_0000
//	depth 3  0b0000_0000_0111_0000
//	depth 4  0b0000_0000_0000_1110
//	depth 5  0b0000_0000_0000_0001
//
// The design is loosely based on the ART and burst-trie papers, adapted to
// balance memory use against insertion speed and to bound the number of
// cache lines touched per operation.
//
// The container is not safe for concurrent use, access from multiple
// goroutines must be externally synchronized.
package burt
