// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trievec

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/gaissmai/pervec/internal/diag"
)

// CheckInvariants walks v's materialized trie and verifies its structural
// invariants: tail shorter than the branch factor, root length a multiple
// of the branch factor, every leaf holding exactly Branch() elements, and
// left-dense population at every branch level. All violations found are
// collected into a single error via go-multierror instead of failing on
// the first one, since a caller debugging a broken invariant usually
// wants the whole picture in one pass.
func CheckInvariants[T any, C Config](v *Vec[T, C]) error {
	var c C
	branch := c.Branch()

	var errs *multierror.Error

	if len(v.tail) >= branch {
		errs = multierror.Append(errs, fmt.Errorf("tail length %d >= branch factor %d", len(v.tail), branch))
	}
	if v.rootLen%branch != 0 {
		errs = multierror.Append(errs, fmt.Errorf("root length %d is not a multiple of branch factor %d", v.rootLen, branch))
	}
	if (v.root == nil) != (v.rootLen == 0) {
		errs = multierror.Append(errs, fmt.Errorf("root nil-ness %v inconsistent with root length %d", v.root == nil, v.rootLen))
	}
	if v.root != nil {
		v.log.Trace("checking invariants", map[string]any{"rootLen": v.rootLen, "shift": v.shift})
		checkNode[T, C](v.root, v.shift, c.Bits(), branch, &errs)
	}

	return errs.ErrorOrNil()
}

func checkNode[T any, C Config](n *node[T, C], shift, bits uint, branch int, errs **multierror.Error) {
	if shift == 0 {
		if !n.isLeaf() {
			*errs = multierror.Append(*errs, fmt.Errorf("branch node found at shift 0"))
			return
		}
		if len(n.elements) != branch {
			*errs = multierror.Append(*errs, fmt.Errorf("leaf has %d elements, want %d", len(n.elements), branch))
		}
		return
	}

	if n.isLeaf() {
		*errs = multierror.Append(*errs, fmt.Errorf("leaf found at shift %d, want 0", shift))
		return
	}
	if len(n.children) != branch {
		*errs = multierror.Append(*errs, fmt.Errorf("branch has %d children slots, want %d", len(n.children), branch))
		return
	}

	seenGap := false
	for _, ch := range n.children {
		if ch == nil {
			seenGap = true
			continue
		}
		if seenGap {
			*errs = multierror.Append(*errs, fmt.Errorf("non-left-dense branch: populated child after a gap"))
		}
		checkNode[T, C](ch, shift-bits, bits, branch, errs)
	}
}
