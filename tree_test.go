// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package burt

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []uint16
		want string
	}{
		{
			name: "empty tree",
			vals: nil,
			want: "",
		},
		{
			name: "simple",
			vals: []uint16{0, 1, 2, 3, 5, 1, 8, 0, 8, 13, 65535, 90},
			want: "0 0 1 1 2 3 5 8 8 13 90 65535 ",
		},
		{
			name: "only zeros",
			vals: []uint16{0, 0, 0},
			want: "0 0 0 ",
		},
		{
			name: "boundary values",
			vals: []uint16{65535, 1},
			want: "1 65535 ",
		},
		{
			name: "duplicates",
			vals: []uint16{7, 7, 7, 7},
			want: "7 7 7 7 ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree := new(Tree)
			for _, v := range tc.vals {
				tree.Insert(v)
			}

			assert.Equal(t, tc.want, tree.String())
			assert.Equal(t, len(tc.vals), tree.Size())
		})
	}
}

// 33 inserts, the 32nd fills the root leaf and bursts it.
func TestSimpleBurst(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	want := new(strings.Builder)

	for v := uint16(1); v <= 32; v++ {
		tree.Insert(v)
		fmt.Fprintf(want, "%d ", v)
	}
	tree.Insert(65535)
	fmt.Fprintf(want, "%d ", 65535)

	assert.Equal(t, want.String(), tree.String())
}

// the values 1..32 share the slot index on depths 0..2, the burst of the
// root leaf must cascade three levels deep before the values split.
func TestRecursiveBurst(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	want := new(strings.Builder)

	for v := uint16(1); v <= 32; v++ {
		tree.Insert(v)
		fmt.Fprintf(want, "%d ", v)
	}

	require.Equal(t, want.String(), tree.String())

	dump := tree.dumpString()
	assert.Contains(t, dump, "[FANOUT] depth: 3", "burst did not cascade to depth 3")
}

// a single repeated value bursts all the way down into a counter bucket.
func TestFortyOnes(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for range 40 {
		tree.Insert(1)
	}

	require.Equal(t, 40, tree.Size())
	assert.Equal(t, strings.Repeat("1 ", 40), tree.String())
	assert.Contains(t, tree.dumpString(), "[COUNT]")
}

func TestZeroHandling(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for range 5 {
		tree.Insert(0)
	}
	tree.Insert(3)
	tree.Insert(1)

	// zeros come first, in front of all other values
	assert.Equal(t, "0 0 0 0 0 1 3 ", tree.String())
}

func TestIdempotentRead(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for _, v := range []uint16{0, 42, 42, 65535, 1, 512} {
		tree.Insert(v)
	}

	first := slices.Collect(tree.All())
	second := slices.Collect(tree.All())

	assert.Equal(t, first, second)
	assert.Equal(t, tree.String(), tree.String())
}

func TestAllEarlyStop(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for v := range uint16(100) {
		tree.Insert(v)
	}

	var got []uint16
	for v := range tree.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []uint16{0, 1, 2}, got)
}

func TestReset(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for v := range uint16(1000) {
		tree.Insert(v)
	}
	require.Equal(t, 1000, tree.Size())

	tree.Reset()

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, "", tree.String())

	// the tree is usable again after Reset
	tree.Insert(7)
	assert.Equal(t, "7 ", tree.String())
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for _, v := range []uint16{8, 0, 8, 13} {
		tree.Insert(v)
	}

	buf, err := tree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0 8 8 13 ", string(buf))
	assert.Equal(t, tree.String(), string(buf))
}

func TestCounterLimit(t *testing.T) {
	t.Parallel()

	tree := new(Tree)
	for range counterLimit {
		tree.Insert(65535)
	}

	// the bucket is saturated, one more insert is a fatal fault
	assert.Panics(t, func() { tree.Insert(65535) })
}

func TestZeroValueTree(t *testing.T) {
	t.Parallel()

	var tree Tree

	assert.Equal(t, "", tree.String())
	assert.Equal(t, 0, tree.Size())

	tree.Insert(1)
	assert.Equal(t, "1 ", tree.String())
}
