// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package trievec provides Vec, a persistent (immutable-by-default)
// indexed sequence implemented as a bit-partitioned radix trie with a
// branching factor of Branch(), plus a small mutable tail buffer that
// amortizes the cost of Push.
//
// Vec is a multibit-trie of fixed stride length: interior nodes hold up
// to Branch() children, leaves hold exactly Branch() elements. Pushing
// an element appends into the tail; once the tail is full it is
// "promoted" into the trie as a new leaf, growing the tree by one level
// whenever its current capacity is exhausted.
//
// Copying a Vec is O(1): it shares the root node with the original and
// only duplicates the small tail slice. Mutating methods (Push, GetMut)
// detect whether the node they are about to change is still exclusively
// referenced by the current handle; if it is shared with another Vec,
// the node is cloned one level deep before the mutation proceeds, so
// untouched subtrees remain shared and untouched copies are unaffected.
//
// Vec is generic over a Config type parameter selecting the branch
// factor and bit width at compile time: Wide (32-way, the default choice
// for production use) and Narrow (4-way, used by tests to exercise
// multi-level promotion paths cheaply).
package trievec
