// SPDX-License-Identifier: MIT

package segtree

import (
	"github.com/katalvlaran/affinetree/affine"
)

// Tree is an array-backed Composition Tree over N affine transformations.
//   - Node v covers a contiguous range; its children are 2v+1 (left) and 2v+2 (right).
//   - The root is node 0 and covers [0, N-1].
//   - Every internal node holds Compose(right, left).
type Tree struct {
	n        int                // number of leaves (N ≥ 1)
	nodes    []affine.Transform // node storage, len == maxNodeIndex(N)+1
	strategy Strategy           // walk used by Query/Update
}

// New builds a Composition Tree over seq.
//
// Implementation:
//   - Stage 1: validate len(seq) ≥ 1.
//   - Stage 2: size the node slice to the largest index the midpoint layout uses.
//   - Stage 3: fill leaves and combine bottom-up as Compose(right, left).
//
// Behavior highlights:
//   - seq is copied; later changes to the caller's slice do not affect the tree.
//   - Each node is computed exactly once.
//
// Errors:
//   - ErrEmptySequence if seq is empty.
//
// Complexity:
//   - Time O(N), Space O(N).
func New(seq []affine.Transform, opts ...Option) (*Tree, error) {
	n := len(seq)
	if n == 0 {
		return nil, ErrEmptySequence
	}
	o := gatherOptions(opts...)

	t := &Tree{
		n:        n,
		nodes:    make([]affine.Transform, maxNodeIndex(0, 0, n-1)+1),
		strategy: o.strategy,
	}
	t.build(seq, 0, 0, n-1)

	return t, nil
}

// maxNodeIndex returns the largest node index used under v for range [tl,tr].
// The left half gets the extra element on odd splits, so either subtree may be deeper.
func maxNodeIndex(v, tl, tr int) int {
	if tl == tr {
		return v
	}
	tm := tl + (tr-tl)/2

	return max(maxNodeIndex(2*v+1, tl, tm), maxNodeIndex(2*v+2, tm+1, tr))
}

func (t *Tree) build(seq []affine.Transform, v, tl, tr int) {
	if tl == tr {
		t.nodes[v] = seq[tl]

		return
	}
	tm := tl + (tr-tl)/2
	left, right := 2*v+1, 2*v+2
	t.build(seq, left, tl, tm)
	t.build(seq, right, tm+1, tr)
	t.pull(v)
}

// pull recomputes node v from its children. Right is the later-applied operand.
func (t *Tree) pull(v int) {
	t.nodes[v] = affine.Compose(t.nodes[2*v+2], t.nodes[2*v+1])
}

// Len returns the number of transformations N.
func (t *Tree) Len() int {
	return t.n
}

// Nodes returns the number of allocated node slots.
func (t *Tree) Nodes() int {
	return len(t.nodes)
}

// Strategy returns the configured walk.
func (t *Tree) Strategy() Strategy {
	return t.strategy
}

// Total returns the composition of the whole sequence (the root value).
func (t *Tree) Total() affine.Transform {
	return t.nodes[0]
}

// At returns the current transformation at pos.
// Complexity: O(log N).
func (t *Tree) At(pos int) (affine.Transform, error) {
	if pos < 0 || pos >= t.n {
		return affine.Transform{}, treeErrorf("At", ErrOutOfRange, pos)
	}
	v, tl, tr := 0, 0, t.n-1
	for tl != tr {
		tm := tl + (tr-tl)/2
		if pos <= tm {
			v, tr = 2*v+1, tm
		} else {
			v, tl = 2*v+2, tm+1
		}
	}

	return t.nodes[v], nil
}

// Leaves returns a copy of the current sequence in index order.
// Complexity: O(N).
func (t *Tree) Leaves() []affine.Transform {
	out := make([]affine.Transform, 0, t.n)
	t.collect(0, 0, t.n-1, &out)

	return out
}

func (t *Tree) collect(v, tl, tr int, out *[]affine.Transform) {
	if tl == tr {
		*out = append(*out, t.nodes[v])

		return
	}
	tm := tl + (tr-tl)/2
	t.collect(2*v+1, tl, tm, out)
	t.collect(2*v+2, tm+1, tr, out)
}
