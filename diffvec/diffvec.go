// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package diffvec

import (
	"slices"

	"github.com/gaissmai/pervec/cell"
	"github.com/gaissmai/pervec/internal/diag"
)

// state is the sum type a handle's cell carries: either the canonical
// array (root) or a delta against a neighbor handle (diff).
type state[T any] interface {
	isState()
}

type root[T any] struct {
	data []T
}

func (root[T]) isState() {}

type diff[T any] struct {
	neighbor *DVec[T]
	action   action[T]
}

func (diff[T]) isState() {}

// handle is the shared, reference-counted target of a DVec's cell
// pointer. refs mirrors Rust's Rc strong count: it is incremented on
// every Clone and on every time a handle is embedded as a diff's
// neighbor, and decremented at the one well-defined point that
// reference is given up -- when mutate moves a handle's owner away from
// it, or when rebase consumes a neighbor reference it just took out of
// a cell. Go has no destructor to decrement it when an unreachable
// handle is collected, so refs is a conservative upper bound on true
// sharing: it can say "shared" when nothing else can actually reach the
// handle anymore, never the reverse.
type handle[T any] struct {
	cell *cell.Cell[state[T]]
	refs int32
}

// DVec is a persistent indexed sequence implemented as a chain of
// reverse deltas against a single shared root (see the package doc).
// The zero value is not ready to use; construct one with New or With.
type DVec[T any] struct {
	h   *handle[T]
	log diag.Logger
}

// New returns an empty DVec.
func New[T any]() *DVec[T] {
	return With[T](nil)
}

// With returns a DVec whose initial contents are data. data is taken
// over by the DVec and must not be modified afterward through any other
// reference.
func With[T any](data []T) *DVec[T] {
	d := &DVec[T]{h: &handle[T]{cell: cell.New[state[T]](), refs: 1}}
	d.h.cell.Put(root[T]{data: data})
	return d
}

// WithLogger attaches a structured logger for rebase trace events. It is
// entirely optional; the zero-value Logger is silent.
func (d *DVec[T]) WithLogger(l diag.Logger) *DVec[T] {
	d.log = l
	return d
}

// Clone returns a new handle sharing the same underlying cell, O(1).
func (d *DVec[T]) Clone() *DVec[T] {
	d.h.refs++
	return &DVec[T]{h: d.h, log: d.log}
}

// extractData empties d's cell and returns its reconstructed array,
// rebasing the chain as needed. The caller is responsible for refilling
// d's cell (as the new root) before control reaches any other public
// entry point.
func (d *DVec[T]) extractData() []T {
	switch s := d.h.cell.Take().(type) {
	case root[T]:
		return s.data
	case diff[T]:
		return rebase(s.neighbor, d, s.action)
	default:
		panic("diffvec: corrupt cell state")
	}
}

// rebase reconstructs d's array from neighbor, where d's (just emptied)
// cell held diff{neighbor, action}: action enacted on neighbor's array
// reproduces d's array. It recursively rebases neighbor to get its
// current array, applies action to obtain d's array and a fresh
// inverse, and stores that inverse back on neighbor's cell pointing at
// d -- rotating the chain so d becomes the locally-authoritative side.
func rebase[T any](neighbor, d *DVec[T], act action[T]) []T {
	neighborData := neighbor.extractData()
	inverse, dData := act.enact(neighborData)
	neighbor.h.cell.Put(diff[T]{neighbor: d.Clone(), action: inverse})
	neighbor.log.Trace("rebase", map[string]any{"len": len(dData)})
	// The reference to neighbor that used to live inside d's cell (the
	// diff payload we just took) has now been fully consumed.
	neighbor.h.refs--
	return dData
}

// demote extracts d's current array, applies act (the mutation being
// requested through d), and leaves d's own cell holding a diff pointing
// at newRoot with the inverse of act -- demoting d to a delta against
// the freshly created root. It returns the mutated array for the caller
// to install into newRoot.
func demote[T any](d, newRoot *DVec[T], act action[T]) []T {
	data := d.extractData()
	inverse, data := act.enact(data)
	d.h.cell.Put(diff[T]{neighbor: newRoot.Clone(), action: inverse})
	return data
}

// isRoot reports whether d's cell currently holds root state, without
// disturbing it.
func (d *DVec[T]) isRoot() bool {
	return cell.Read(d.h.cell, func(s state[T]) bool {
		_, ok := s.(root[T])
		return ok
	})
}

// mutate applies act to d's sequence. The cheap in-place path requires
// both that d's handle is uniquely referenced AND that d's cell already
// holds root state: extracting through an existing diff link always
// hands a fresh embedded reference to whichever neighbor d was demoted
// from (the rebase that makes d the new root also makes that neighbor's
// own diff point at d), so a node that was mid-chain gains a dependent
// the instant it is read, regardless of how many live handles pointed
// at it beforehand. Skipping the root check there would let an
// untracked, unlinked overwrite invalidate that neighbor's just-stored
// delta. Otherwise this allocates a fresh root handle, demotes the old
// one to a diff against it, and switches d over to the new handle,
// leaving every other clone's view untouched.
func (d *DVec[T]) mutate(act action[T]) {
	if d.h.refs == 1 && d.isRoot() {
		data := d.extractData()
		_, data = act.enact(data)
		d.h.cell.Put(root[T]{data: data})
		return
	}

	newRoot := &DVec[T]{h: &handle[T]{cell: cell.New[state[T]](), refs: 1}, log: d.log}
	data := demote(d, newRoot, act)
	newRoot.h.cell.Put(root[T]{data: data})

	d.log.Trace("demote on shared mutate", map[string]any{"refs": d.h.refs})
	d.h.refs--
	d.h = newRoot.h
}

// Read invokes f with d's current array without exposing it beyond the
// callback, then restores d's cell to root. It does not recover from a
// panic inside f: if f panics, d's cell is left empty and d becomes
// permanently unusable, the same contract cell.Cell documents for a
// misused slot.
func (d *DVec[T]) Read(f func(data []T)) {
	data := d.extractData()
	f(data)
	d.h.cell.Put(root[T]{data: data})
}

// Len returns the number of elements in the sequence.
func (d *DVec[T]) Len() int {
	n := 0
	d.Read(func(data []T) { n = len(data) })
	return n
}

// Get returns the element at index i. Out of range is a contract
// violation delegated to the underlying array: it panics with the same
// "index out of range" the slice access itself would produce.
func (d *DVec[T]) Get(i int) T {
	var v T
	d.Read(func(data []T) { v = data[i] })
	return v
}

// Push appends val.
func (d *DVec[T]) Push(val T) {
	d.mutate(push[T]{val: val})
}

// Pop removes and returns the trailing element. It panics if the
// sequence is empty.
func (d *DVec[T]) Pop() T {
	var popped T
	d.Read(func(data []T) { popped = data[len(data)-1] })
	d.mutate(pop[T]{})
	return popped
}

// Set overwrites the element at index i with val. Out of range is a
// contract violation delegated to the underlying array, same as Get.
func (d *DVec[T]) Set(i int, val T) {
	d.mutate(set[T]{index: i, val: val})
}

// Snapshot returns a freshly allocated copy of the sequence's current
// contents.
func (d *DVec[T]) Snapshot() []T {
	var out []T
	d.Read(func(data []T) { out = slices.Clone(data) })
	return out
}

// Depth reports how many diff links lie between d and the chain's
// current root, without rebasing. It exists for tests and diagnostics:
// a healthy access pattern keeps this small, since every read or
// mutation through a handle collapses its own chain to zero.
func (d *DVec[T]) Depth() int {
	return cell.Read(d.h.cell, func(s state[T]) int {
		switch s := s.(type) {
		case root[T]:
			return 0
		case diff[T]:
			return 1 + s.neighbor.Depth()
		default:
			panic("diffvec: corrupt cell state")
		}
	})
}
