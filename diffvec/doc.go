// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package diffvec provides DVec, a persistent indexed sequence built as
// a chain of reverse deltas against a single shared root.
//
// At any instant a DVec's handle points at a cell.Cell holding either the
// canonical root array, or a diff against a neighbor handle: "the
// neighbor's current array with this delta's action applied reproduces
// this handle's array". Reading or mutating any handle rebases it to
// root, rotating the chain so that handle becomes the new
// locally-authoritative side -- future reads from it are O(1) until a
// different handle in the version tree is accessed, the same locality
// trick a splay tree uses for access patterns.
//
// Cloning a DVec is O(1): both handles share the same underlying cell.
// The first mutation made through either handle after a clone detects
// the sharing and instead allocates a new root cell, leaving the other
// handle's view untouched.
package diffvec
