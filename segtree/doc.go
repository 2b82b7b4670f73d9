// SPDX-License-Identifier: MIT

// Package segtree maintains a sequence of affine transformations and answers
// range-composition queries in O(log N).
//
// 🚀 What is a Composition Tree?
//
//	A segment tree whose nodes store the composed transformation of their
//	covered index range. Leaf i holds the i-th transformation; an internal
//	node covering [l,r], split at m, holds
//
//	    right.value ⊗ left.value      (right = [m+1,r], left = [l,m])
//
//	because higher indices are applied AFTER lower ones, and the later-applied
//	operand is always the left (outer) side of affine.Compose.
//
// ✨ Key features:
//   - New:        build once from N ≥ 1 transforms, O(N)
//   - Update:     point replacement, recompute ancestors, O(log N)
//   - Query:      composed transform over [l,r] inclusive, O(log N)
//   - QueryPoint: Query followed by affine.Apply
//   - Strategy:   Recursive (default) or Iterative (explicit stack) walks
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/affinetree/affine"
//	  "github.com/katalvlaran/affinetree/segtree"
//	)
//
//	tree, err := segtree.New([]affine.Transform{
//	  affine.Translate(5, 0), affine.Rotate(90), affine.Scale(2, 2),
//	})
//	p, err := tree.QueryPoint(0, 2, affine.Point{X: 1, Y: 0}) // (0, 12)
//
// Indexing:
//
//	Positions are 0-based and ranges are inclusive on both ends. A reversed
//	range (l > r) is the empty range and yields affine.Identity(). Any other
//	index outside [0, N-1] is rejected with ErrOutOfRange; nothing is clamped.
//
// Memory:
//
//	The node slice is allocated once in New and sized exactly to the largest
//	node index the layout uses for the given N. Update and Query never allocate
//	tree storage.
//
// Concurrency:
//
//	A Tree is NOT safe for concurrent use. Callers must serialise Update and
//	Query on the same instance.
package segtree
