// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trievec

import "cmp"

// Equal reports whether a and b represent the same sequence of values.
// It is a free function, not a method, because T only needs to satisfy
// comparable here, while Vec itself is declared over plain `any` -- Go
// methods cannot add constraints beyond the receiver's own type
// parameters (mirrors the shape of the standard library's slices.Equal).
func Equal[T comparable, C Config](a, b *Vec[T, C]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		av, _ := a.Get(i)
		bv, _ := b.Get(i)
		if av != bv {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or +1 comparing a and b lexicographically,
// mirroring the standard library's slices.Compare.
func Compare[T cmp.Ordered, C Config](a, b *Vec[T, C]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		av, _ := a.Get(i)
		bv, _ := b.Get(i)
		if c := cmp.Compare(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
