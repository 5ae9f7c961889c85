// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow multiset over the whole
// uint16 value space, the golden reference for burt.
package golden

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Multiset is just an occurrence-count array with one counter per
// possible value, obviously correct and obviously slow.
type Multiset struct {
	counts  [1 << 16]uint64
	present *bitset.BitSet
}

// New returns an empty Multiset.
func New() *Multiset {
	return &Multiset{present: bitset.New(1 << 16)}
}

// Insert adds one occurrence of v.
func (m *Multiset) Insert(v uint16) {
	m.counts[v]++
	m.present.Set(uint(v))
}

// Size returns the number of stored values, counting multiplicity.
func (m *Multiset) Size() int {
	var size uint64
	for i, ok := m.present.NextSet(0); ok; i, ok = m.present.NextSet(i + 1) {
		size += m.counts[i]
	}
	return int(size)
}

// All yields every stored value in ascending order, duplicates once per
// occurrence.
func (m *Multiset) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for i, ok := m.present.NextSet(0); ok; i, ok = m.present.NextSet(i + 1) {
			for range m.counts[i] {
				if !yield(uint16(i)) {
					return
				}
			}
		}
	}
}

// String renders the multiset in the same text format as burt,
// every value followed by a single space.
func (m *Multiset) String() string {
	w := new(strings.Builder)
	for v := range m.All() {
		fmt.Fprintf(w, "%d ", v)
	}
	return w.String()
}
