// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trievec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/pervec/trievec"
)

// TestPushFiveThousandSequentialReadBack pushes 5,000 integers and
// verifies length and read-after-push.
func TestPushFiveThousandSequentialReadBack(t *testing.T) {
	t.Parallel()

	v := trievec.New[int, trievec.Wide]()
	for i := 0; i < 5000; i++ {
		v.Push(i)
	}

	require.Equal(t, 5000, v.Len())
	for i := 0; i < 5000; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	require.NoError(t, trievec.CheckInvariants[int, trievec.Wide](v))
}

// TestCloneThenPushDivergesLengths clones after 5,000 pushes, pushes
// 5,000 more into the original, and checks both handles independently.
func TestCloneThenPushDivergesLengths(t *testing.T) {
	t.Parallel()

	a := trievec.New[int, trievec.Wide]()
	for i := 0; i < 5000; i++ {
		a.Push(i)
	}

	b := a.Clone()

	for i := 0; i < 5000; i++ {
		a.Push(i)
	}

	require.Equal(t, 10000, a.Len())
	require.Equal(t, 5000, b.Len())

	for i := 0; i < 5000; i++ {
		got, ok := a.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	for i := 5000; i < 10000; i++ {
		got, ok := a.Get(i)
		require.True(t, ok)
		assert.Equal(t, i-5000, got)
	}
	for i := 0; i < 5000; i++ {
		got, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

// TestGetMutSharesUntouchedSuffixAcrossClone pushes 128 ints with a
// narrow (B=4) config, clones, increments the first half in place, and
// verifies the untouched suffix is both value-equal and the same
// physical leaf slot between the two handles.
func TestGetMutSharesUntouchedSuffixAcrossClone(t *testing.T) {
	t.Parallel()

	a := trievec.New[int, trievec.Narrow]()
	for i := 0; i < 128; i++ {
		a.Push(i)
	}
	b := a.Clone()

	for i := 0; i < 64; i++ {
		p, ok := a.GetMut(i)
		require.True(t, ok)
		*p++
	}

	for i := 0; i < 64; i++ {
		got, ok := a.Get(i)
		require.True(t, ok)
		assert.Equal(t, i+1, got)
	}
	for i := 64; i < 128; i++ {
		got, ok := a.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	for i := 0; i < 128; i++ {
		got, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	for i := 64; i < 128; i++ {
		pa, ok := trievec.Addr[int, trievec.Narrow](a, i)
		require.True(t, ok)
		pb, ok := trievec.Addr[int, trievec.Narrow](b, i)
		require.True(t, ok)
		assert.Same(t, pa, pb, "untouched suffix must remain physically shared at index %d", i)
	}
}

// TestSharingIsolation verifies mutating a clone's source after the
// clone was taken never changes the clone.
func TestSharingIsolation(t *testing.T) {
	t.Parallel()

	a := trievec.New[int, trievec.Narrow]()
	for i := 0; i < 40; i++ {
		a.Push(i)
	}
	b := a.Clone()

	for i := 0; i < 40; i++ {
		p, _ := a.GetMut(i)
		*p = -1
	}
	a.Push(999)

	for i := 0; i < 40; i++ {
		got, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 40, b.Len())
}

// TestIndependenceAfterFork verifies that pushing further elements to a
// handle after cloning it leaves the clone's length and contents unchanged.
func TestIndependenceAfterFork(t *testing.T) {
	t.Parallel()

	a := trievec.New[int, trievec.Narrow]()
	for i := 0; i < 10; i++ {
		a.Push(i)
	}
	b := a.Clone()

	for i := 0; i < 8; i++ {
		a.Push(100 + i)
	}

	require.Equal(t, 10, b.Len())
	for i := 0; i < 10; i++ {
		got, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

func TestGetOutOfRangeIsAbsent(t *testing.T) {
	t.Parallel()

	v := trievec.New[int, trievec.Wide]()
	v.Push(1)
	v.Push(2)

	_, ok := v.Get(-1)
	assert.False(t, ok)
	_, ok = v.Get(2)
	assert.False(t, ok)

	_, ok = v.GetMut(2)
	assert.False(t, ok)
}

func TestEqualAndCompare(t *testing.T) {
	t.Parallel()

	a := trievec.New[int, trievec.Wide]()
	b := trievec.New[int, trievec.Wide]()
	for i := 0; i < 70; i++ {
		a.Push(i)
		b.Push(i)
	}
	assert.True(t, trievec.Equal[int, trievec.Wide](a, b))
	assert.Equal(t, 0, trievec.Compare[int, trievec.Wide](a, b))

	b.Push(999)
	assert.False(t, trievec.Equal[int, trievec.Wide](a, b))
	assert.Equal(t, -1, trievec.Compare[int, trievec.Wide](a, b))
	assert.Equal(t, 1, trievec.Compare[int, trievec.Wide](b, a))
}

// TestNarrowMultiLevelPromotion exercises the branch-ladder path at
// several tree depths using the B=4 configuration.
func TestNarrowMultiLevelPromotion(t *testing.T) {
	t.Parallel()

	const n = 600 // several levels deep with branch factor 4
	v := trievec.New[int, trievec.Narrow]()
	for i := 0; i < n; i++ {
		v.Push(i)
		require.NoError(t, trievec.CheckInvariants[int, trievec.Narrow](v))
	}
	for i := 0; i < n; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}
