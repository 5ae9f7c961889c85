// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package burt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the stored values in ascending order as string,
// just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes every stored value in ascending order to w, duplicates
// once per occurrence, each value followed by a single space:
//
//	"0 0 1 1 2 3 5 8 8 13 90 65535 "
//
// The format is kept stable, existing consumers replay and compare these
// dumps verbatim. If w is nil, Fprint panics.
func (t *Tree) Fprint(w io.Writer) error {
	for v := range t.All() {
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}

	return nil
}
