// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sorted implements a fixed-capacity ordered array of non-zero
// uint16 values with an in-place shift-and-insert.
//
// The zero value marks an empty slot: unused slots form a contiguous
// prefix of the array and the occupied suffix is sorted ascending,
// duplicates allowed. The array is full iff slot 0 is occupied.
package sorted

// Capacity is the fixed number of slots per array.
const Capacity = 32

// Array32 is a bounded sorted multiset of non-zero uint16 values.
// The zero value is an empty array, ready to use.
type Array32 struct {
	slots [Capacity]uint16
}

// IsFull returns true if all slots are occupied.
func (a *Array32) IsFull() bool {
	return a.slots[0] != 0
}

// Len returns the number of occupied slots.
func (a *Array32) Len() int {
	return Capacity - a.firstUsed()
}

// Values returns the occupied suffix, sorted ascending.
// The slice aliases the backing array, callers must not modify it.
func (a *Array32) Values() []uint16 {
	return a.slots[a.firstUsed():]
}

// firstUsed returns the index of the first occupied slot,
// or Capacity if the array is empty.
func (a *Array32) firstUsed() int {
	for i, v := range a.slots {
		if v != 0 {
			return i
		}
	}
	return Capacity
}

// Insert places v into sort order and reports whether the array is full
// afterwards. v must not be zero, zero is the empty-slot sentinel.
//
// Insert must not be called on a full array or the behavior is
// undefined, maybe it panics. Callers burst a node as soon as Insert
// reports it full.
func (a *Array32) Insert(v uint16) (full bool) {
	// scan from the highest slot down to the first occupied slot with a
	// smaller value, or to the first empty slot
	i := Capacity - 1
	for a.slots[i] != 0 && a.slots[i] >= v {
		// no underflow, slot 0 is empty below capacity
		i--
	}

	if a.slots[i] != 0 {
		// open a gap at i, the smaller values shift one towards the empty end
		copy(a.slots[:i], a.slots[1:i+1])
	}
	a.slots[i] = v

	return a.slots[0] != 0
}
